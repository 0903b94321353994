// Command tospec converts audio files (WAV/FLAC) to spectrogram images (PNG).
//
// This tool computes the one-sided complex spectrogram that the stretch
// command works on and renders it as a PNG image: red carries log-magnitude,
// green carries phase. With -half it also stores the complex values as a
// half-precision buffer that fromspec can turn back into audio.
//
// Usage:
//
//	tospec [flags] <audio_file>
//
// The output PNG file will be named <audio_file>.png and the buffer
// <audio_file>.gsph
//
// Supported input formats: .wav, .flac
package main
