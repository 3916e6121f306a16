// SPDX-License-Identifier: EPL-2.0

package engine

import "math/rand/v2"

// Rand is the randomness an Engine draws from: one call per tick for the
// spawn gate and one per spawn for the start jitter.
// Implementations are used from the audio goroutine only and must not block.
type Rand interface {
	// Range returns a uniformly distributed integer in [low, high).
	Range(low, high int) int
}

type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a PCG-backed Rand. Equal seeds give equal sequences.
func NewRand(seed uint64) Rand {
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRand) Range(low, high int) int {
	if high <= low {
		return low
	}
	return low + p.r.IntN(high-low)
}
