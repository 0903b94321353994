package spectrogram

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	ErrEmpty  = errors.New("spectrogram has no bins or no frames")
	ErrRagged = errors.New("spectrogram columns differ in length")
)

// Spectrogram is a bins x frames complex matrix stored frame by frame.
type Spectrogram struct {
	bins   int
	frames int
	data   []complex128
}

// New returns a zeroed bins x frames spectrogram.
func New(bins, frames int) (*Spectrogram, error) {
	if bins <= 0 || frames <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, bins, frames)
	}
	return &Spectrogram{
		bins:   bins,
		frames: frames,
		data:   make([]complex128, bins*frames),
	}, nil
}

// FromColumns copies cols, where cols[t] holds all bins of frame t.
func FromColumns(cols [][]complex128) (*Spectrogram, error) {
	if len(cols) == 0 {
		return nil, ErrEmpty
	}
	s, err := New(len(cols[0]), len(cols))
	if err != nil {
		return nil, err
	}
	for t, col := range cols {
		if len(col) != s.bins {
			return nil, fmt.Errorf("%w: frame %d has %d bins, want %d", ErrRagged, t, len(col), s.bins)
		}
		copy(s.Column(t), col)
	}
	return s, nil
}

// Bins returns the number of frequency bins.
func (s *Spectrogram) Bins() int { return s.bins }

// Frames returns the number of time frames.
func (s *Spectrogram) Frames() int { return s.frames }

// At returns the value at bin k of frame t.
func (s *Spectrogram) At(k, t int) complex128 { return s.data[t*s.bins+k] }

// Set stores v at bin k of frame t.
func (s *Spectrogram) Set(k, t int, v complex128) { s.data[t*s.bins+k] = v }

// Column returns frame t. The slice aliases the spectrogram storage.
func (s *Spectrogram) Column(t int) []complex128 {
	return s.data[t*s.bins : (t+1)*s.bins : (t+1)*s.bins]
}

// Magnitude returns |s[k, t]|.
func (s *Spectrogram) Magnitude(k, t int) float64 { return cmplx.Abs(s.At(k, t)) }

// Phase returns the argument of s[k, t] in [-pi, pi].
func (s *Spectrogram) Phase(k, t int) float64 { return cmplx.Phase(s.At(k, t)) }

// Clone returns a deep copy.
func (s *Spectrogram) Clone() *Spectrogram {
	data := make([]complex128, len(s.data))
	copy(data, s.data)
	return &Spectrogram{bins: s.bins, frames: s.frames, data: data}
}

// IsFinite reports whether every value has finite real and imaginary parts.
func (s *Spectrogram) IsFinite() bool {
	for _, v := range s.data {
		if math.IsNaN(real(v)) || math.IsInf(real(v), 0) || math.IsNaN(imag(v)) || math.IsInf(imag(v), 0) {
			return false
		}
	}
	return true
}
