package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/neurlang/gostretch/spectrogram"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomSpectrogram fills a bins x frames spectrogram with seeded random
// magnitudes in [0, 1) and phases in [-pi, pi).
func RandomSpectrogram(seed int64, bins, frames int) *spectrogram.Spectrogram {
	s, err := spectrogram.New(bins, frames)
	if err != nil {
		panic(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for t := 0; t < frames; t++ {
		for k := 0; k < bins; k++ {
			s.Set(k, t, cmplx.Rect(rng.Float64(), (rng.Float64()*2-1)*math.Pi))
		}
	}
	return s
}

// ToneSpectrogram builds the spectrogram of an ideal stationary tone: every
// bin has magnitude mag and rotates by exactly advance[k] per frame.
func ToneSpectrogram(mag float64, advance []float64, frames int) *spectrogram.Spectrogram {
	s, err := spectrogram.New(len(advance), frames)
	if err != nil {
		panic(err)
	}
	for t := 0; t < frames; t++ {
		for k, a := range advance {
			s.Set(k, t, cmplx.Rect(mag, a*float64(t)))
		}
	}
	return s
}
