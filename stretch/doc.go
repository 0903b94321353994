// Package stretch wires audio loading, the forward transform, the phase
// vocoder and the inverse transform into a time-stretching pipeline.
//
// It supports:
//   - Stretching sample buffers and WAV/FLAC files by an arbitrary positive rate
//   - Either the literal or the polar synthesis of the vocoder
//   - Dumping the stretched spectrogram as a PNG image or half-precision buffer
package stretch
