// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 16, 24 or 32 bits, any channel count and
// any sample rate. WAVE_FORMAT_EXTENSIBLE files are accepted when their
// samples are integer PCM. Samples come out of the returned audio.Source
// as float32 in [-1, 1), scaled by the file's bit depth:
//
//	f, _ := os.Open("input.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	n, err := src.ReadSamples(buf)
//
// go-audio seeks between chunks. Readers that cannot seek are buffered
// into memory before parsing.
//
// # Encoding
//
// WriteWAV16 writes the granulator's output format, mono 16-bit PCM:
//
//	out, _ := os.Create("grains.wav")
//	defer out.Close()
//	err := wav.WriteWAV16(out, 44100, samples)
//
// The RIFF and data chunk sizes are patched once all samples are written,
// which is why the destination must be an io.WriteSeeker.
//
// # Errors
//
//   - ErrNotWavFile: the input has no valid RIFF/WAVE header
//   - ErrUnsupportedEncoding: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: 8-bit or other unsupported sample widths
//   - ErrUnsupportedWavLayout: missing data chunk or an unusable fmt chunk
//
// Errors carry detail and wrap the sentinels; match them with errors.Is.
package wav
