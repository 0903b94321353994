package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
)

var ErrFileNotLoaded = errors.New("audio file not loaded")

// Load reads a mono sample vector and its sample rate. Files ending in .flac
// are decoded as FLAC, everything else as WAV.
func Load(path string) ([]float64, int, error) {
	if strings.EqualFold(filepath.Ext(path), ".flac") {
		return LoadFlac(path)
	}
	return LoadWav(path)
}

// LoadWav loads a wav file, downmixed to mono.
func LoadWav(path string) ([]float64, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrFileNotLoaded, path, err)
	}
	defer stream.Close()

	gain := wavGain(format.Precision)
	var out []float64
	samples := make([][2]float64, 4096)
	for {
		n, ok := stream.Stream(samples)
		for _, s := range samples[:n] {
			out = append(out, gain*(s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrFileNotLoaded, path, err)
	}
	if len(out) == 0 || format.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %s: no samples", ErrFileNotLoaded, path)
	}
	return out, int(format.SampleRate), nil
}

// wavGain undoes the decoder's scaling, which divides signed PCM by the full
// unsigned range and so lands at half scale.
func wavGain(precision int) float64 {
	switch precision {
	case 2:
		return (1<<16 - 1) / float64(1<<15-1)
	case 3:
		return (1<<24 - 1) / float64(1<<23-1)
	}
	return 1
}

// LoadFlac loads a flac file, downmixed to mono.
func LoadFlac(path string) ([]float64, int, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrFileNotLoaded, path, err)
	}
	defer stream.Close()

	if stream.Info.BitsPerSample == 0 {
		return nil, 0, fmt.Errorf("%w: %s: zero bits per sample", ErrFileNotLoaded, path)
	}
	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))
	var out []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: %v", ErrFileNotLoaded, path, err)
		}
		channels := len(frame.Subframes)
		if channels == 0 {
			continue
		}
		for i := range frame.Subframes[0].Samples {
			var sum float64
			for _, sub := range frame.Subframes {
				sum += float64(sub.Samples[i])
			}
			out = append(out, sum/float64(channels)/scale)
		}
	}
	if len(out) == 0 || stream.Info.SampleRate == 0 {
		return nil, 0, fmt.Errorf("%w: %s: no samples", ErrFileNotLoaded, path)
	}
	return out, int(stream.Info.SampleRate), nil
}

// SaveWav saves mono 16-bit wav file from sample vector. Samples outside
// [-1, 1] are clipped.
func SaveWav(path string, vec []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive: %d", sampleRate)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, sliceStreamer(vec), format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sliceStreamer(vec []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= len(vec) {
			return 0, false
		}
		for n < len(samples) && pos < len(vec) {
			v := clip(vec[pos])
			samples[n] = [2]float64{v, v}
			n++
			pos++
		}
		return n, true
	})
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
