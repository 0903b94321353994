package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/neurlang/gostretch/internal/config"
	"github.com/neurlang/gostretch/stretch"
)

func main() {
	if err := config.LoadDefaultEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "stretch: ignoring env file: %v\n", err)
	}

	// Create a new instance of Stretch
	var m = stretch.NewStretch()

	nfft := flag.Int("n_fft", config.Int("STRETCH_N_FFT", m.FFTSize), "fft size in samples")
	hop := flag.Int("hop", config.Int("STRETCH_HOP", m.HopLength), "hop length in samples")
	rate := flag.Float64("rate", 0, "fractional stretch rate, overrides the ratio argument")
	polar := flag.Bool("polar", config.Bool("STRETCH_POLAR", false), "scale both real and imaginary parts by magnitude")
	sr := flag.Int("sr", 0, "output sample rate (default: input rate)")
	boost := flag.Float64("boost", 0, "output gain factor (0 disables)")
	png := flag.String("png", "", "write the stretched spectrogram as PNG image")
	half := flag.String("half", "", "write the stretched spectrogram as half-precision buffer")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stretch [flags] <input> <output> <time_stretch_ratio>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "stretch: ", 0)

	// Check if the file and ratio arguments are provided
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	ratio, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		logger.Printf("time stretch ratio must be an integer: %q", flag.Arg(2))
		os.Exit(2)
	}

	m.FFTSize = *nfft
	m.HopLength = *hop
	m.Rate = float64(ratio)
	if *rate != 0 {
		m.Rate = *rate
	}
	m.Polar = *polar
	m.SampleRate = *sr
	m.VolumeBoost = *boost
	m.ImageFile = *png
	m.HalfFile = *half

	m.Logger = log.New(io.Discard, "", 0)
	if *verbose {
		m.Logger = logger
	}

	if err := m.Validate(); err != nil {
		logger.Printf("invalid settings: %v", err)
		os.Exit(2)
	}

	if err := m.StretchFile(flag.Arg(0), flag.Arg(1)); err != nil {
		logger.Fatalf("error stretching %s: %v", flag.Arg(0), err)
	}
}
