// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// Decoding is done by github.com/go-audio/aiff. Its integer PCM output is
// turned into float32 by the same adapter the WAV decoder uses.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF with big-endian integer PCM
//   - 8, 16, 24 and 32 bits per sample
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	f, _ := os.Open("pad.aif")
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// formats.Open registers this decoder for both .aif and .aiff.
//
// # Output Format
//
// AIFF decoder output:
//   - Sample format: float32 in [-1, 1), scaled by the file's bit depth
//     (v/128, v/32768, v/8388608 or v/2147483648)
//   - Channels: from the COMM chunk, interleaved
//   - Sample rate: from the COMM chunk
//
// # Input Requirements
//
// go-audio seeks between chunks, so the decoder needs an io.ReadSeeker.
// An *os.File or *bytes.Reader is used directly. Any other io.Reader is
// read into memory first, which is fine for the short clips a granulator
// works on but worth knowing for long recordings.
//
// # Feeding the Granulator
//
// Resample and downmix to the engine's format first:
//
//	src, _ := aiff.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, eng.SampleRate()))
//	gran, err := audio.NewGranulator(mono, eng)
//
// # Limitations
//
//   - Decoding only; renders are written as WAV
//   - AIFF-C compressed encodings are not supported
//   - Markers, instrument and comment chunks are ignored
//
// # Errors
//
// The package defines these errors:
//   - ErrNotAiffFile: the input has no valid FORM/AIFF header
//   - ErrUnsupportedBitDepth: a sample width other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the COMM chunk declares no channels or no
//     sample rate
//
// Errors carrying detail wrap these sentinels; match them with errors.Is:
//
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // try another decoder
//	}
package aiff
