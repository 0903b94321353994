package transform

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/neurlang/gostretch/spectrogram"
	"github.com/r9y9/gossp/stft"
)

var (
	ErrConfig      = errors.New("invalid transform configuration")
	ErrShape       = errors.New("spectrogram bin count does not match fft size")
	ErrEmptySignal = errors.New("signal is empty")
)

// squared window sums below this are treated as uncovered samples
const windowFloor = 1e-10

// Transform holds the analysis parameters shared by Forward and Inverse.
type Transform struct {
	FFTSize   int
	HopLength int
}

// New returns a Transform after validating its parameters.
func New(fftSize, hopLength int) (*Transform, error) {
	t := &Transform{FFTSize: fftSize, HopLength: hopLength}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that FFTSize is even and at least 2 and that HopLength lies
// in [1, FFTSize].
func (t *Transform) Validate() error {
	if t.FFTSize < 2 || t.FFTSize%2 != 0 {
		return fmt.Errorf("%w: fft size must be even and >= 2: %d", ErrConfig, t.FFTSize)
	}
	if t.HopLength < 1 || t.HopLength > t.FFTSize {
		return fmt.Errorf("%w: hop length must be in [1, %d]: %d", ErrConfig, t.FFTSize, t.HopLength)
	}
	return nil
}

// Bins returns the one-sided bin count FFTSize/2 + 1.
func (t *Transform) Bins() int { return t.FFTSize/2 + 1 }

// Frames returns the number of frames Forward yields for a signal of the
// given length.
func (t *Transform) Frames(samples int) int {
	return (t.paddedLen(samples)-t.FFTSize)/t.HopLength + 1
}

// paddedLen is the signal length after centering with FFTSize/2 zeros on each
// side and extending the tail so the last frame ends at the buffer end.
func (t *Transform) paddedLen(samples int) int {
	n := samples + t.FFTSize
	if rem := (n - t.FFTSize) % t.HopLength; rem != 0 {
		n += t.HopLength - rem
	}
	return n
}

func (t *Transform) pad(buf []float64) []float64 {
	out := make([]float64, t.paddedLen(len(buf)))
	copy(out[t.FFTSize/2:], buf)
	return out
}

// Forward returns the one-sided spectrogram of buf.
func (t *Transform) Forward(buf []float64) (*spectrogram.Spectrogram, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrEmptySignal
	}

	st := stft.New(t.HopLength, t.FFTSize)

	spectrum := st.STFT(t.pad(buf))

	s, err := spectrogram.New(t.Bins(), len(spectrum))
	if err != nil {
		return nil, err
	}
	for i := range spectrum {
		copy(s.Column(i), spectrum[i][:t.Bins()])
	}
	return s, nil
}

// Inverse reconstructs a waveform from a one-sided spectrogram. When length is
// positive the result is trimmed or zero-extended to exactly length samples.
func (t *Transform) Inverse(s *spectrogram.Spectrogram, length int) ([]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.Frames() == 0 {
		return nil, ErrEmptySignal
	}
	if s.Bins() != t.Bins() {
		return nil, fmt.Errorf("%w: have %d bins, fft size %d needs %d", ErrShape, s.Bins(), t.FFTSize, t.Bins())
	}

	st := stft.New(t.HopLength, t.FFTSize)
	frameLen := t.FFTSize
	numFrames := s.Frames()
	reconstructedSignal := make([]float64, frameLen+(numFrames-1)*t.HopLength)
	windowSum := make([]float64, len(reconstructedSignal))

	full := make([]complex128, frameLen)
	for i := 0; i < numFrames; i++ {
		col := s.Column(i)
		copy(full, col)
		for k := 1; k < frameLen/2; k++ {
			full[frameLen-k] = cmplx.Conj(col[k])
		}

		buf := fft.IFFT(full)
		for j := 0; j < frameLen; j++ {
			pos := i*t.HopLength + j
			reconstructedSignal[pos] += real(buf[j]) * st.Window[j]
			windowSum[pos] += st.Window[j] * st.Window[j]
		}
	}

	for i := range reconstructedSignal {
		if windowSum[i] > windowFloor {
			reconstructedSignal[i] /= windowSum[i]
		}
	}

	half := frameLen / 2
	if length <= 0 {
		return reconstructedSignal[half : len(reconstructedSignal)-half], nil
	}
	out := make([]float64, length)
	copy(out, reconstructedSignal[half:])
	return out, nil
}
