package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/neurlang/gostretch/internal/config"
	"github.com/neurlang/gostretch/stretch"
)

func main() {
	if err := config.LoadDefaultEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "fromspec: ignoring env file: %v\n", err)
	}

	var m = stretch.NewStretch()

	hop := flag.Int("hop", 0, "hop length for files that store none (0 uses the default)")
	rate := flag.Float64("rate", 1, "stretch rate applied before resynthesis")
	polar := flag.Bool("polar", config.Bool("STRETCH_POLAR", false), "scale both real and imaginary parts by magnitude")
	sr := flag.Int("sr", 0, "output sample rate (0 uses the stored rate)")
	boost := flag.Float64("boost", 0, "output gain factor (0 disables)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fromspec [flags] <gsph_file>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "fromspec: ", 0)

	// Check if the filename argument is provided
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Get the filename from the command-line arguments
	var filename = flag.Arg(0)

	if *hop != 0 {
		m.HopLength = *hop
	}
	m.Rate = *rate
	m.Polar = *polar
	m.SampleRate = *sr
	m.VolumeBoost = *boost
	if *verbose {
		m.Logger = logger
	}
	if *hop < 0 || *sr < 0 || !(*rate > 0) {
		logger.Printf("invalid settings: hop %d, sample rate %d, rate %v", *hop, *sr, *rate)
		os.Exit(2)
	}

	if err := m.HalfToWav(filename, filename+".wav"); err != nil {
		logger.Fatalf("error generating %s.wav: %v", filename, err)
	}
}
