// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which works in float32
// natively, so samples pass through to the audio.Source without scaling.
//
// # Supported Formats
//
// The decoder supports:
//   - Vorbis I streams in an Ogg container (.ogg, .oga)
//   - Any channel count the stream declares
//   - Any sample rate the stream declares
//
// # Decoding Ogg Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	f, _ := os.Open("field.ogg")
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// formats.Open registers this decoder for both .ogg and .oga.
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32 as decoded, nominally in [-1, 1]
//   - Channels: from the stream header, interleaved
//   - Sample rate: from the stream header
//
// Vorbis output can slightly overshoot full scale. Values outside [-1, 1]
// are clamped later, when the pipeline converts to int16.
//
// # Frame Alignment
//
// ReadSamples only ever returns whole frames. dst is trimmed to a multiple
// of the channel count before decoding, so a dst shorter than one frame
// reads nothing and returns (0, nil).
//
// # Feeding the Granulator
//
// Resample and downmix to the engine's format first:
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, eng.SampleRate()))
//	gran, err := audio.NewGranulator(mono, eng)
//
// # Limitations
//
//   - Decoding only
//   - Chained streams with changing channel counts are not supported
//   - Comment headers are parsed by oggvorbis but not exposed
//
// # Errors
//
// Decode wraps the oggvorbis error when the identification header cannot
// be read. Read errors other than io.EOF are wrapped and returned from
// ReadSamples.
package vorbis
