// Package vocoder time-stretches complex spectrograms without changing pitch.
//
// Stretch resamples the frame axis at fractional positions t*rate. Magnitudes
// of the two neighbouring input frames are interpolated linearly, while phase
// is integrated per bin: each output frame advances a running phase by the
// expected rotation of the bin's centre frequency plus the wrapped deviation
// measured between the neighbouring input frames. This keeps spectral peaks
// phase-coherent at the new frame spacing.
//
// The frame loop carries the phase accumulator from one output frame to the
// next and is therefore strictly sequential. Stretch is a pure function of its
// arguments and is safe for concurrent use.
package vocoder
