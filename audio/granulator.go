// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/grainbx/engine"
	"github.com/ik5/grainbx/pcm"
)

// Granulator is a Source stage that runs every sample of a mono source
// through a grain engine. Each read advances the engine by one tick per
// sample, so a Granulator should be the engine's only caller of Process.
type Granulator struct {
	src Source
	eng *engine.Engine
}

// NewGranulator wires src into eng. src must be mono and at the engine's
// sample rate; put a Resampler and a MonoMixer in front of it otherwise.
func NewGranulator(src Source, eng *engine.Engine) (*Granulator, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%d channels: %w", src.Channels(), ErrNotMono)
	}
	if src.SampleRate() != eng.SampleRate() {
		return nil, fmt.Errorf("%d Hz vs %d Hz: %w", src.SampleRate(), eng.SampleRate(), ErrRateMismatch)
	}
	return &Granulator{src: src, eng: eng}, nil
}

func (g *Granulator) SampleRate() int { return g.src.SampleRate() }
func (g *Granulator) Channels() int   { return 1 }

func (g *Granulator) Close() error {
	if err := g.src.Close(); err != nil {
		return fmt.Errorf("granulator: %w", err)
	}
	return nil
}

// ReadSamples reads from the source and replaces each sample, in place, with
// the engine's output for it.
func (g *Granulator) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)
	for i := range n {
		dst[i] = pcm.ToFloat32(g.eng.Process(pcm.FromFloat32(dst[i])))
	}
	return n, err
}
