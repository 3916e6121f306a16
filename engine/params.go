// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"sync/atomic"
)

// MaxDensity is the density that spawns on every tick.
const MaxDensity = 100

// params holds the tunables that a control goroutine may change while the
// audio goroutine is ticking. Each value lives in its own word and is read
// independently by the spawn path.
type params struct {
	grainSize atomic.Uint32
	density   atomic.Uint32
	pitch     atomic.Uint32 // math.Float32bits
}

func (p *params) store(grainSize uint16, density uint8, pitch float32) {
	p.grainSize.Store(uint32(grainSize))
	p.density.Store(uint32(density))
	p.pitch.Store(math.Float32bits(pitch))
}

func (p *params) loadGrainSize() int { return int(p.grainSize.Load()) }
func (p *params) loadDensity() int   { return int(p.density.Load()) }
func (p *params) loadPitch() float32 { return math.Float32frombits(p.pitch.Load()) }

func validGrainSize(n uint16) error {
	if n == 0 {
		return configError("grain size", n, ErrGrainSize)
	}
	return nil
}

func validDensity(d uint8) error {
	if d > MaxDensity {
		return configError("density", d, ErrDensity)
	}
	return nil
}

func validPitch(p float32) error {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) || p <= 0 {
		return configError("pitch", p, ErrPitch)
	}
	return nil
}
