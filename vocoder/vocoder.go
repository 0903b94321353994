package vocoder

import (
	"math"
	"math/cmplx"

	"github.com/neurlang/gostretch/spectrogram"
)

// Synthesis selects how an output bin is built from magnitude and phase.
type Synthesis int

const (
	// SynthesisLiteral builds cos(phase) + i*mag*sin(phase). Only the
	// imaginary part is scaled by the magnitude.
	SynthesisLiteral Synthesis = iota
	// SynthesisPolar builds mag*exp(i*phase).
	SynthesisPolar
)

func (s Synthesis) String() string {
	switch s {
	case SynthesisLiteral:
		return "literal"
	case SynthesisPolar:
		return "polar"
	}
	return "unknown"
}

// Options configures Stretch. Zero values select the defaults.
type Options struct {
	// HopLength is the analysis hop in samples. Defaults to FFTSize/4.
	HopLength int
	// FFTSize defaults to 2*(bins-1).
	FFTSize int

	Synthesis Synthesis
}

func (o Options) resolve(bins int) Options {
	if o.FFTSize == 0 {
		o.FFTSize = 2 * (bins - 1)
	}
	if o.HopLength == 0 {
		o.HopLength = o.FFTSize / 4
	}
	return o
}

// FrameCount returns the number of output frames for an input of the given
// length, i.e. the count of t >= 0 with t*rate < frames.
func FrameCount(frames int, rate float64) int {
	if frames <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(frames) / rate))
	// the division can round either way near integer ratios
	for n > 0 && float64(n-1)*rate >= float64(frames) {
		n--
	}
	for float64(n)*rate < float64(frames) {
		n++
	}
	return n
}

// Stretch time-stretches d by rate. Rates above 1 shorten the signal, rates
// below 1 lengthen it. The result has the same bin count as d and
// FrameCount(d.Frames(), rate) frames. d is not modified.
func Stretch(d *spectrogram.Spectrogram, rate float64, opts Options) (*spectrogram.Spectrogram, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	if err := validateInput(d); err != nil {
		return nil, err
	}
	if err := validateOptions(d.Bins(), opts); err != nil {
		return nil, err
	}
	opts = opts.resolve(d.Bins())

	bins, frames := d.Bins(), d.Frames()
	out, err := spectrogram.New(bins, FrameCount(frames, rate))
	if err != nil {
		return nil, err
	}

	advance := AdvanceTable(bins, opts.HopLength)
	acc := newAccumulator(d.Column(0))

	// frames past the end read as silence
	zero := make([]complex128, bins)
	column := func(t int) []complex128 {
		if t < frames {
			return d.Column(t)
		}
		return zero
	}

	for t := 0; t < out.Frames(); t++ {
		step := float64(t) * rate
		base := math.Floor(step)
		alpha := step - base
		col0, col1 := column(int(base)), column(int(base)+1)

		dst := out.Column(t)
		for k := range dst {
			mag := (1-alpha)*cmplx.Abs(col0[k]) + alpha*cmplx.Abs(col1[k])
			dst[k] = synthesize(opts.Synthesis, mag, acc[k])
		}

		acc.step(col0, col1, advance)
	}

	return out, nil
}

func synthesize(mode Synthesis, mag, phase float64) complex128 {
	sin, cos := math.Sincos(phase)
	if mode == SynthesisPolar {
		return complex(mag*cos, mag*sin)
	}
	return complex(cos, mag*sin)
}
