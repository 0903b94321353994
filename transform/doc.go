// Package transform converts between real waveforms and one-sided complex
// spectrograms.
//
// Forward runs a centered, Hann-windowed short-time Fourier transform and keeps
// bins 0..FFTSize/2. Inverse rebuilds the full Hermitian spectrum of each frame,
// inverse-transforms it and overlap-adds with the same window, normalizing by
// the summed squared window.
package transform
