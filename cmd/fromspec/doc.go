// Command fromspec converts half-precision spectrogram buffers back to audio files (WAV).
//
// The buffer written by tospec -half or stretch -half retains magnitude and
// phase, so reconstruction is a direct inverse transform. An optional -rate
// time-stretches the spectrogram first.
//
// Usage:
//
//	fromspec [flags] <gsph_file>
//
// The output WAV file will be named <gsph_file>.wav. The sample rate, hop
// and length stored in the buffer are used unless -sr overrides the rate;
// -hop only applies to buffers that store no hop.
package main
