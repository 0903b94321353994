package vocoder

import (
	"errors"
	"fmt"
	"math"

	"github.com/neurlang/gostretch/spectrogram"
)

var (
	ErrInvalidRate     = errors.New("stretch rate must be positive and finite")
	ErrEmptyInput      = errors.New("spectrogram must have at least one bin and one frame")
	ErrInconsistentHop = errors.New("hop length or fft size inconsistent with spectrogram")
)

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	return nil
}

func validateInput(d *spectrogram.Spectrogram) error {
	if d == nil || d.Bins() <= 0 || d.Frames() <= 0 {
		return ErrEmptyInput
	}
	return nil
}

func validateOptions(bins int, opts Options) error {
	if opts.HopLength < 0 {
		return fmt.Errorf("%w: hop length %d", ErrInconsistentHop, opts.HopLength)
	}
	if opts.FFTSize < 0 {
		return fmt.Errorf("%w: fft size %d", ErrInconsistentHop, opts.FFTSize)
	}
	if opts.FFTSize > 0 && opts.FFTSize/2+1 != bins {
		return fmt.Errorf("%w: fft size %d implies %d bins, have %d",
			ErrInconsistentHop, opts.FFTSize, opts.FFTSize/2+1, bins)
	}
	switch opts.Synthesis {
	case SynthesisLiteral, SynthesisPolar:
	default:
		return fmt.Errorf("unknown synthesis mode %d", opts.Synthesis)
	}
	return nil
}
