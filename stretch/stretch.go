package stretch

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/neurlang/gostretch/audio"
	"github.com/neurlang/gostretch/spectrogram"
	"github.com/neurlang/gostretch/transform"
	"github.com/neurlang/gostretch/vocoder"
)

// Stretch represents the configuration of the time-stretching pipeline.
type Stretch struct {
	FFTSize   int
	HopLength int
	Rate      float64
	// use mag*exp(i*phase) instead of the literal synthesis
	Polar bool

	// sample rate for output wav, 0 keeps the input rate
	SampleRate  int
	VolumeBoost float64

	// optional dumps of the stretched spectrogram, written when non-empty
	ImageFile string
	HalfFile  string
	YReverse  bool

	Logger *log.Logger
}

// NewStretch creates a new Stretch instance with default values.
func NewStretch() *Stretch {
	return &Stretch{
		FFTSize:   2048,
		HopLength: 512,
		Rate:      1,
		YReverse:  true,
	}
}

// Validate checks the configuration before any audio is touched.
func (m *Stretch) Validate() error {
	if _, err := transform.New(m.FFTSize, m.HopLength); err != nil {
		return err
	}
	return m.validateRates()
}

func (m *Stretch) validateRates() error {
	if math.IsNaN(m.Rate) || math.IsInf(m.Rate, 0) || m.Rate <= 0 {
		return fmt.Errorf("%w: %v", vocoder.ErrInvalidRate, m.Rate)
	}
	if m.SampleRate < 0 {
		return fmt.Errorf("output sample rate must not be negative: %d", m.SampleRate)
	}
	return nil
}

func (m *Stretch) logf(format string, args ...interface{}) {
	if m.Logger != nil {
		m.Logger.Printf(format, args...)
	}
}

func (m *Stretch) options() vocoder.Options {
	opts := vocoder.Options{FFTSize: m.FFTSize, HopLength: m.HopLength}
	if m.Polar {
		opts.Synthesis = vocoder.SynthesisPolar
	}
	return opts
}

// StretchSpectrogram time-stretches an already transformed spectrogram.
func (m *Stretch) StretchSpectrogram(d *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return vocoder.Stretch(d, m.Rate, m.options())
}

// StretchBuffer time-stretches a wave buffer. The result holds
// round(len(buf)/Rate) samples.
func (m *Stretch) StretchBuffer(buf []float64) ([]float64, error) {
	return m.stretchBuffer(buf, m.SampleRate)
}

// stretchBuffer is StretchBuffer with the sample rate recorded in dumps.
func (m *Stretch) stretchBuffer(buf []float64, sampleRate int) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	tr, err := transform.New(m.FFTSize, m.HopLength)
	if err != nil {
		return nil, err
	}

	spectrum, err := tr.Forward(buf)
	if err != nil {
		return nil, err
	}
	m.logf("analysed %d samples into %d bins x %d frames", len(buf), spectrum.Bins(), spectrum.Frames())

	stretched, err := vocoder.Stretch(spectrum, m.Rate, m.options())
	if err != nil {
		return nil, err
	}
	m.logf("stretched by %v to %d frames (%s synthesis)", m.Rate, stretched.Frames(), m.options().Synthesis)

	length := stretchedLength(len(buf), m.Rate)
	info := spectrogram.HalfInfo{SampleRate: sampleRate, HopLength: m.HopLength, Samples: length}
	if err := m.dump(stretched, info); err != nil {
		return nil, err
	}

	owave, err := tr.Inverse(stretched, length)
	if err != nil {
		return nil, err
	}

	m.boost(owave)

	return owave, nil
}

// StretchFile loads a WAV or FLAC file, stretches it and saves a WAV file.
func (m *Stretch) StretchFile(inputFile, outputFile string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	buf, sr, err := audio.Load(inputFile)
	if err != nil {
		return err
	}
	m.logf("loaded %s: %d samples at %d Hz", inputFile, len(buf), sr)

	if m.SampleRate != 0 {
		sr = m.SampleRate
	}

	owave, err := m.stretchBuffer(buf, sr)
	if err != nil {
		return err
	}
	if err := audio.SaveWav(outputFile, owave, sr); err != nil {
		return err
	}
	m.logf("wrote %s: %d samples at %d Hz", outputFile, len(owave), sr)

	return nil
}

// HalfToWav resynthesizes a spectrogram written by SaveHalf into a WAV file,
// stretching it by Rate first. The stored hop, sample rate and length are
// used; HopLength fills in a missing hop and a non-zero SampleRate overrides
// the stored rate.
func (m *Stretch) HalfToWav(inputFile, outputFile string) error {
	if err := m.validateRates(); err != nil {
		return err
	}

	spectrum, info, err := LoadHalf(inputFile)
	if err != nil {
		return err
	}
	m.logf("loaded %s: %d bins x %d frames, %+v", inputFile, spectrum.Bins(), spectrum.Frames(), info)

	hop := info.HopLength
	if hop == 0 {
		hop = m.HopLength
	}
	sr := info.SampleRate
	if m.SampleRate != 0 {
		sr = m.SampleRate
	}
	if sr == 0 {
		return fmt.Errorf("%s: no sample rate stored, set one explicitly", inputFile)
	}

	// the fft size follows from the stored bin count
	tr, err := transform.New(2*(spectrum.Bins()-1), hop)
	if err != nil {
		return err
	}

	length := info.Samples
	if m.Rate != 1 {
		opts := m.options()
		opts.FFTSize, opts.HopLength = tr.FFTSize, tr.HopLength
		spectrum, err = vocoder.Stretch(spectrum, m.Rate, opts)
		if err != nil {
			return err
		}
		if length > 0 {
			length = stretchedLength(length, m.Rate)
		}
		m.logf("stretched by %v to %d frames", m.Rate, spectrum.Frames())
	}

	owave, err := tr.Inverse(spectrum, length)
	if err != nil {
		return err
	}
	m.boost(owave)

	if err := audio.SaveWav(outputFile, owave, sr); err != nil {
		return err
	}
	m.logf("wrote %s: %d samples at %d Hz", outputFile, len(owave), sr)
	return nil
}

func stretchedLength(n int, rate float64) int {
	length := int(math.Round(float64(n) / rate))
	if length < 1 {
		length = 1
	}
	return length
}

func (m *Stretch) boost(wave []float64) {
	if m.VolumeBoost == 0 {
		return
	}
	for i := range wave {
		wave[i] *= m.VolumeBoost
	}
}

func (m *Stretch) dump(s *spectrogram.Spectrogram, info spectrogram.HalfInfo) error {
	if m.ImageFile != "" {
		if err := s.SavePNG(m.ImageFile, m.YReverse); err != nil {
			return err
		}
		m.logf("wrote spectrogram image %s", m.ImageFile)
	}
	if m.HalfFile != "" {
		if err := SaveHalf(m.HalfFile, s, info); err != nil {
			return err
		}
		m.logf("wrote half-precision spectrogram %s", m.HalfFile)
	}
	return nil
}

// SaveHalf writes s and its signal info to the named file with
// spectrogram.EncodeHalf.
func SaveHalf(name string, s *spectrogram.Spectrogram, info spectrogram.HalfInfo) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := s.EncodeHalf(f, info); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadHalf reads a spectrogram written by SaveHalf.
func LoadHalf(name string) (*spectrogram.Spectrogram, spectrogram.HalfInfo, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, spectrogram.HalfInfo{}, err
	}
	defer f.Close()
	return spectrogram.DecodeHalf(f)
}
