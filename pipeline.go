// SPDX-License-Identifier: EPL-2.0

package grainbx

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/grainbx/audio"
	"github.com/ik5/grainbx/engine"
	"github.com/ik5/grainbx/pcm"
)

// DefaultBufSize is used when a non-positive buffer size is passed in.
const DefaultBufSize = 4096

// LoadMono16 resamples src to rate, downmixes it to mono and collects the
// whole stream as int16 PCM.
//
// Example:
//
//	src, _ := formats.Open("voice.wav")
//	defer src.Close()
//	samples, rate, err := grainbx.LoadMono16(src, 44100, 4096)
func LoadMono16(src audio.Source, rate int, bufSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, rate))

	out, err := collect(mono, bufSize, nil)
	if err != nil {
		return nil, rate, err
	}
	return out, rate, nil
}

// GranulateToMono16 brings src to the engine's sample rate, downmixes it and
// feeds every sample through eng, collecting the engine's output. The result
// has one output sample per input sample; grains still sounding when the
// input ends are cut off.
//
// Samples are narrowed to int16 once, before the engine, so the output is
// bit-identical to calling eng.Process on the int16 input directly.
func GranulateToMono16(src audio.Source, eng *engine.Engine, bufSize int) ([]int16, int, error) {
	rate := eng.SampleRate()
	mono := audio.NewMonoMixer(audio.NewResampler(src, rate))

	out, err := collect(mono, bufSize, func(block []int16) {
		eng.ProcessBlock(block, block)
	})
	if err != nil {
		return nil, rate, err
	}
	return out, rate, nil
}

// collect drains src into int16 PCM, handing each converted block to stage
// when it is non-nil.
func collect(src audio.Source, bufSize int, stage func([]int16)) ([]int16, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	// roughly two seconds up front; append grows the rest
	out := make([]int16, 0, 2*max(src.SampleRate(), 0))
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			start := len(out)
			for _, x := range buf[:n] {
				out = append(out, pcm.FromFloat32(x))
			}
			if stage != nil {
				stage(out[start:])
			}
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
