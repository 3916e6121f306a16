// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// Decoding is done by github.com/hajimehoshi/go-mp3; this package adapts
// its byte stream to the audio.Source interface used by the rest of the
// module.
//
// # Supported Formats
//
// The decoder supports:
//   - MPEG-1 and MPEG-2 Audio Layer III
//   - Constant and variable bitrates
//   - Mono and stereo files (both decoded as stereo, see below)
//   - The sample rates go-mp3 accepts (32, 44.1 and 48 kHz and their
//     MPEG-2 halves)
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	f, _ := os.Open("loop.mp3")
//	defer f.Close()
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// formats.Open does the same by file extension and closes the file when
// the source is closed.
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in [-1, 1), scaled from go-mp3's int16 PCM
//   - Channels: always 2, interleaved left/right
//   - Sample rate: whatever the file declares
//
// go-mp3 always produces stereo, so even a mono file reports two channels
// with identical left and right samples.
//
// # Frame Alignment
//
// ReadSamples only ever returns whole stereo frames:
//   - an odd-length dst is filled up to its last even index, and a dst of
//     length 1 reads nothing
//   - a frame cut short by the end of the stream is dropped and io.EOF is
//     returned with the frames that were complete
//
// A caller that reads the source directly, without a Resampler or
// MonoMixer in between, therefore never sees the channels swap.
//
// # Feeding the Granulator
//
// The grain engine takes mono input at its own sample rate. Resample and
// downmix first:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, eng.SampleRate()))
//	gran, err := audio.NewGranulator(mono, eng)
//
// or let grainbx.GranulateToMono16 build that chain:
//
//	out, rate, err := grainbx.GranulateToMono16(src, eng, 4096)
//
// # Limitations
//
//   - Decoding only; renders are written with wav.WriteWAV16
//   - Output is always stereo (use MonoMixer to convert)
//   - No seeking; the source is read front to back once
//   - ID3 tags are skipped by go-mp3 and not exposed
//
// # Errors
//
// Decode returns go-mp3's error, wrapped, when no valid frame header is
// found. Read errors other than the end of the stream are wrapped and
// returned from ReadSamples together with the samples decoded before them.
package mp3
