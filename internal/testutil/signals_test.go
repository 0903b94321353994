package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	require.Len(t, s, 48)
	assert.InDelta(t, 0, s[0], 1e-15)
	for i, v := range s {
		assert.True(t, v >= -1 && v <= 1, "s[%d] = %v out of range", i, v)
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	assert.Equal(t, DeterministicNoise(7, 1, 64), DeterministicNoise(7, 1, 64))
	assert.NotEqual(t, DeterministicNoise(7, 1, 64), DeterministicNoise(8, 1, 64))
}

func TestRandomSpectrogram(t *testing.T) {
	s := RandomSpectrogram(1, 4, 6)
	assert.Equal(t, 4, s.Bins())
	assert.Equal(t, 6, s.Frames())
	assert.Equal(t, s, RandomSpectrogram(1, 4, 6))
	for f := 0; f < s.Frames(); f++ {
		for k := 0; k < s.Bins(); k++ {
			assert.Less(t, s.Magnitude(k, f), 1.0+1e-12)
		}
	}
}

func TestToneSpectrogram(t *testing.T) {
	s := ToneSpectrogram(2, []float64{0, 0.5}, 3)
	assert.InDelta(t, 0, cmplx.Abs(s.At(1, 2)-cmplx.Rect(2, 1)), 1e-12)
	assert.InDelta(t, 2, s.Magnitude(0, 1), 1e-12)
	assert.InDelta(t, 0, s.Phase(0, 2), 1e-12)
	assert.False(t, math.IsNaN(s.Phase(1, 0)))
}
