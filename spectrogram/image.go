package spectrogram

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// magnitude floor before taking the logarithm
const logFloor = 1e-5

// Image renders the spectrogram with frames along x and bins along y.
// Red carries the normalized log-magnitude, green the normalized phase and
// blue their mean. With reverse set, bin 0 is drawn at the bottom row.
func (s *Spectrogram) Image(reverse bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.frames, s.bins))

	var magMin, magMax = math.Inf(1), math.Inf(-1)
	logmag := make([]float64, len(s.data))
	for i, v := range s.data {
		m := math.Log(math.Max(math.Hypot(real(v), imag(v)), logFloor))
		logmag[i] = m
		if m > magMax {
			magMax = m
		}
		if m < magMin {
			magMin = m
		}
	}
	span := magMax - magMin
	if span == 0 {
		span = 1
	}

	for x := 0; x < s.frames; x++ {
		for y := 0; y < s.bins; y++ {
			val0 := (logmag[x*s.bins+y] - magMin) / span
			val1 := (s.Phase(y, x) + math.Pi) / (2 * math.Pi)
			col := color.RGBA{
				R: uint8(255 * val0),
				G: uint8(255 * val1),
				B: uint8(255 * (val0 + val1) * 0.5),
				A: 255,
			}
			if reverse {
				img.SetRGBA(x, s.bins-y-1, col)
			} else {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img
}

// WritePNG encodes Image(reverse) as PNG.
func (s *Spectrogram) WritePNG(w io.Writer, reverse bool) error {
	return png.Encode(w, s.Image(reverse))
}

// SavePNG writes the PNG rendering to the named file.
func (s *Spectrogram) SavePNG(name string, reverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := s.WritePNG(f, reverse); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
