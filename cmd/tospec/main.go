package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/neurlang/gostretch/audio"
	"github.com/neurlang/gostretch/internal/config"
	"github.com/neurlang/gostretch/spectrogram"
	"github.com/neurlang/gostretch/stretch"
	"github.com/neurlang/gostretch/transform"
)

func main() {
	if err := config.LoadDefaultEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "tospec: ignoring env file: %v\n", err)
	}

	var m = stretch.NewStretch()

	nfft := flag.Int("n_fft", config.Int("STRETCH_N_FFT", m.FFTSize), "fft size in samples")
	hop := flag.Int("hop", config.Int("STRETCH_HOP", m.HopLength), "hop length in samples")
	half := flag.Bool("half", false, "also write <audio_file>.gsph")
	topDown := flag.Bool("top-down", false, "draw bin 0 at the top of the image")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tospec [flags] <audio_file>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "tospec: ", 0)

	// Check if the filename argument is provided
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Get the filename from the command-line arguments
	var filename = flag.Arg(0)

	tr, err := transform.New(*nfft, *hop)
	if err != nil {
		logger.Printf("invalid settings: %v", err)
		os.Exit(2)
	}

	buf, sr, err := audio.Load(filename)
	if err != nil {
		logger.Fatalf("error loading %s: %v", filename, err)
	}

	spectrum, err := tr.Forward(buf)
	if err != nil {
		logger.Fatalf("error generating spectrogram: %v", err)
	}

	if err := spectrum.SavePNG(filename+".png", !*topDown); err != nil {
		logger.Fatalf("error writing image: %v", err)
	}

	if *half {
		info := spectrogram.HalfInfo{SampleRate: sr, HopLength: *hop, Samples: len(buf)}
		if err := stretch.SaveHalf(filename+".gsph", spectrum, info); err != nil {
			logger.Fatalf("error writing spectrogram: %v", err)
		}
	}
}
