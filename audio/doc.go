// Package audio loads and saves mono sample vectors.
//
// WAV files are decoded and encoded with beep, FLAC files are decoded with
// mewkiz/flac. Multi-channel input is downmixed by averaging the channels.
package audio
