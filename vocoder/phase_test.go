package vocoder

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/neurlang/gostretch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRange(t *testing.T) {
	inputs := []float64{
		0, 1, -1,
		math.Pi, -math.Pi,
		math.Nextafter(math.Pi, 0), math.Nextafter(-math.Pi, 0),
		3 * math.Pi, -3 * math.Pi,
		2 * math.Pi, -2 * math.Pi,
		7.5, -7.5, 1e6, -1e6,
	}
	for _, x := range inputs {
		w := Wrap(x)
		assert.Greater(t, w, -math.Pi, "Wrap(%v)", x)
		assert.LessOrEqual(t, w, math.Pi, "Wrap(%v)", x)
		// same angle
		assert.InDelta(t, math.Cos(x), math.Cos(w), 1e-6, "Wrap(%v)", x)
		assert.InDelta(t, math.Sin(x), math.Sin(w), 1e-6, "Wrap(%v)", x)
	}
}

func TestWrapBoundary(t *testing.T) {
	assert.Equal(t, math.Pi, Wrap(math.Pi))
	assert.Equal(t, math.Pi, Wrap(-math.Pi))
	assert.Equal(t, 0.0, Wrap(0))
	assert.InDelta(t, 0.5, Wrap(0.5+4*math.Pi), 1e-12)
	assert.InDelta(t, -0.5, Wrap(-0.5-4*math.Pi), 1e-12)
}

func TestAdvanceTable(t *testing.T) {
	adv := AdvanceTable(5, 512)
	require.Len(t, adv, 5)
	assert.Equal(t, 0.0, adv[0])
	assert.InDelta(t, math.Pi*512, adv[4], 1e-9)
	for k := 1; k < len(adv); k++ {
		assert.InDelta(t, math.Pi*512/4, adv[k]-adv[k-1], 1e-9)
	}

	assert.Equal(t, []float64{0}, AdvanceTable(1, 512))
}

func TestAccumulatorInit(t *testing.T) {
	col := []complex128{1, 1i, -1, cmplx.Rect(3, -0.25)}
	acc := newAccumulator(col)
	want := []float64{0, math.Pi / 2, math.Pi, -0.25}
	for k := range want {
		assert.InDelta(t, want[k], acc[k], 1e-12)
	}
}

func TestAccumulatorPureTone(t *testing.T) {
	adv := AdvanceTable(9, 1)
	tone := testutil.ToneSpectrogram(1, adv, 30)

	acc := newAccumulator(tone.Column(0))
	start := append([]float64(nil), acc...)
	for f := 0; f+1 < tone.Frames(); f++ {
		acc.step(tone.Column(f), tone.Column(f+1), adv)
		for k := range acc {
			want := start[k] + float64(f+1)*adv[k]
			assert.InDelta(t, want, acc[k], 1e-9, "bin %d after %d steps", k, f+1)
		}
	}
}

func TestAccumulatorCorrectsDeviation(t *testing.T) {
	// the true rotation differs from the expected one by 0.3 rad per frame
	adv := []float64{1.0}
	col0 := []complex128{cmplx.Rect(1, 0)}
	col1 := []complex128{cmplx.Rect(1, 1.3)}

	acc := newAccumulator(col0)
	acc.step(col0, col1, adv)
	assert.InDelta(t, 1.3, acc[0], 1e-12)
}
