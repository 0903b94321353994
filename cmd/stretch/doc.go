// Command stretch time-stretches audio files (WAV/FLAC) without changing pitch.
//
// The input is analysed with a short-time Fourier transform, resampled in time
// by a phase vocoder and resynthesized into a mono 16-bit WAV file.
//
// Usage:
//
//	stretch [flags] <input> <output> <time_stretch_ratio>
//
// A ratio of 2 plays twice as fast. The integer ratio can be replaced by any
// positive rate with -rate. Flag defaults may be set through the environment
// variables STRETCH_N_FFT, STRETCH_HOP and STRETCH_POLAR, also read from
// $STRETCH_ENV, ~/.stretch.env and ./.env.
//
// Supported input formats: .wav, .flac
package main
