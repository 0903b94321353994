// Package spectrogram provides the complex time-frequency matrix shared by the
// transform, vocoder and command packages.
//
// A Spectrogram is indexed by (frequency bin, time frame). It supports:
//   - Column access to whole frames, which is how every consumer scans it
//   - Compact half-precision serialization of the complex values
//   - Rendering magnitude and phase to PNG images
package spectrogram
