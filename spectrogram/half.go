package spectrogram

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/x448/float16"
)

var ErrFormat = errors.New("not a half-precision spectrogram")

var halfMagic = [4]byte{'G', 'S', 'P', 'H'}

// maxHalfWords bounds the body a header may announce.
const maxHalfWords = 1 << 28

// HalfInfo is the signal metadata stored next to a half-precision dump.
// Zero fields are unknown.
type HalfInfo struct {
	SampleRate int
	HopLength  int
	// Samples is the length of the analysed signal.
	Samples int
}

type halfHeader struct {
	Magic      [4]byte
	Bins       uint32
	Frames     uint32
	SampleRate uint32
	HopLength  uint32
	Samples    uint64
}

// Half returns the spectrogram as interleaved real/imaginary binary16 words,
// frame by frame.
func (s *Spectrogram) Half() []uint16 {
	out := make([]uint16, 0, 2*len(s.data))
	for _, v := range s.data {
		out = append(out,
			float16.Fromfloat32(float32(real(v))).Bits(),
			float16.Fromfloat32(float32(imag(v))).Bits())
	}
	return out
}

// FromHalf rebuilds a spectrogram with the given bin count from words produced by Half.
func FromHalf(bins int, buf []uint16) (*Spectrogram, error) {
	if bins <= 0 || len(buf) == 0 || len(buf)%(2*bins) != 0 {
		return nil, fmt.Errorf("%w: %d words for %d bins", ErrFormat, len(buf), bins)
	}
	s, err := New(bins, len(buf)/(2*bins))
	if err != nil {
		return nil, err
	}
	for i := range s.data {
		re := float16.Frombits(buf[2*i]).Float32()
		im := float16.Frombits(buf[2*i+1]).Float32()
		s.data[i] = complex(float64(re), float64(im))
	}
	return s, nil
}

// EncodeHalf writes a little-endian header carrying the dimensions and info,
// followed by the Half words.
func (s *Spectrogram) EncodeHalf(w io.Writer, info HalfInfo) error {
	if info.SampleRate < 0 || info.HopLength < 0 || info.Samples < 0 {
		return fmt.Errorf("negative half info %+v", info)
	}
	bw := bufio.NewWriter(w)
	hdr := halfHeader{
		Magic:      halfMagic,
		Bins:       uint32(s.bins),
		Frames:     uint32(s.frames),
		SampleRate: uint32(info.SampleRate),
		HopLength:  uint32(info.HopLength),
		Samples:    uint64(info.Samples),
	}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, s.Half()); err != nil {
		return err
	}
	return bw.Flush()
}

// DecodeHalf reads a spectrogram written by EncodeHalf.
func DecodeHalf(r io.Reader) (*Spectrogram, HalfInfo, error) {
	var hdr halfHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, HalfInfo{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if hdr.Magic != halfMagic {
		return nil, HalfInfo{}, fmt.Errorf("%w: bad magic %q", ErrFormat, hdr.Magic[:])
	}
	if hdr.Bins == 0 || hdr.Frames == 0 {
		return nil, HalfInfo{}, fmt.Errorf("%w: empty %dx%d", ErrFormat, hdr.Bins, hdr.Frames)
	}
	words := 2 * uint64(hdr.Bins) * uint64(hdr.Frames)
	if words > maxHalfWords || hdr.Samples > math.MaxInt32 {
		return nil, HalfInfo{}, fmt.Errorf("%w: oversized %dx%d", ErrFormat, hdr.Bins, hdr.Frames)
	}
	body, err := io.ReadAll(io.LimitReader(r, int64(2*words)))
	if err != nil {
		return nil, HalfInfo{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if uint64(len(body)) != 2*words {
		return nil, HalfInfo{}, fmt.Errorf("%w: body is %d bytes, want %d", ErrFormat, len(body), 2*words)
	}
	buf := make([]uint16, words)
	for i := range buf {
		buf[i] = binary.LittleEndian.Uint16(body[2*i:])
	}
	s, err := FromHalf(int(hdr.Bins), buf)
	if err != nil {
		return nil, HalfInfo{}, err
	}
	info := HalfInfo{
		SampleRate: int(hdr.SampleRate),
		HopLength:  int(hdr.HopLength),
		Samples:    int(hdr.Samples),
	}
	return s, info, nil
}
