package vocoder

import (
	"math"
	"math/cmplx"
)

// Wrap maps a phase difference into (-pi, pi].
func Wrap(x float64) float64 {
	w := math.Mod(x+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	w -= math.Pi
	if w <= -math.Pi {
		return math.Pi
	}
	return w
}

// AdvanceTable returns the expected phase rotation per hop for each bin,
// spaced linearly from 0 to pi*hopLength.
func AdvanceTable(bins, hopLength int) []float64 {
	advance := make([]float64, bins)
	if bins < 2 {
		return advance
	}
	span := math.Pi * float64(hopLength)
	for k := range advance {
		advance[k] = float64(k) * span / float64(bins-1)
	}
	return advance
}

// accumulator is the running synthesis phase of every bin.
type accumulator []float64

func newAccumulator(first []complex128) accumulator {
	acc := make(accumulator, len(first))
	for k, v := range first {
		acc[k] = cmplx.Phase(v)
	}
	return acc
}

// step advances every bin by its expected rotation plus the wrapped deviation
// measured between the bracketing input frames col0 and col1.
func (acc accumulator) step(col0, col1 []complex128, advance []float64) {
	for k := range acc {
		dphase := cmplx.Phase(col1[k]) - cmplx.Phase(col0[k]) - advance[k]
		acc[k] += advance[k] + Wrap(dphase)
	}
}
