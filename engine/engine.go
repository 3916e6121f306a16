// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ik5/grainbx/pcm"
)

// Engine turns a stream of input samples into a granular texture, one sample
// per Process call. Process must be called from a single goroutine; the
// Set methods are safe to call from any goroutine at any time.
type Engine struct {
	history History
	pool    Pool
	params  params

	sampleRate int
	mixDivisor int
	jitter     int
	rand       Rand
	observer   SpawnObserver
	tick       uint64

	// live grain count published for other goroutines
	live atomic.Int32
}

// New validates cfg and returns an engine with silent history and no grains.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := cfg.Rand
	if r == nil {
		r = NewRand(uint64(time.Now().UnixNano()))
	}

	e := &Engine{
		sampleRate: cfg.SampleRate,
		mixDivisor: cfg.MixDivisor,
		jitter:     cfg.Jitter,
		rand:       r,
		observer:   cfg.Observer,
	}
	e.params.store(cfg.GrainSize, cfg.Density, cfg.Pitch)

	return e, nil
}

// Process runs one tick: it records in, mixes the live grains, maybe spawns
// a new one and returns the normalized mix. It never fails, blocks or
// allocates.
func (e *Engine) Process(in int16) int16 {
	e.history.Write(in)

	sum, active := e.pool.Mix(&e.history)

	if e.rand.Range(0, MaxDensity) < e.params.loadDensity() {
		e.spawn()
	}
	e.tick++
	e.live.Store(int32(e.pool.Active()))

	divisor := int32(active / e.mixDivisor)
	if divisor == 0 {
		return 0
	}
	return pcm.Saturate(sum / divisor)
}

// ProcessBlock runs Process over src, writing into dst, and returns the
// number of samples processed: the shorter of the two lengths.
func (e *Engine) ProcessBlock(dst, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = e.Process(src[i])
	}
	return n
}

func (e *Engine) spawn() {
	length := e.params.loadGrainSize()
	pitch := e.params.loadPitch()
	start := (e.history.Cursor() + e.rand.Range(-e.jitter, 0)) & historyMask

	slot, ok := e.pool.Spawn(start, length, pitch)
	if !ok || e.observer == nil {
		return
	}

	e.observer.ObserveSpawn(SpawnEvent{
		Tick:   e.tick,
		Slot:   slot,
		Length: length,
		Pitch:  pitch,
		Start:  start,
	})
}

// SetGrainSize changes the length of grains spawned from now on.
// Zero is rejected and the previous value kept.
func (e *Engine) SetGrainSize(samples uint16) error {
	if err := validGrainSize(samples); err != nil {
		return err
	}
	e.params.grainSize.Store(uint32(samples))
	return nil
}

// SetDensity changes the per-tick spawn probability, in percent.
// Values above 100 are rejected and the previous value kept.
func (e *Engine) SetDensity(percent uint8) error {
	if err := validDensity(percent); err != nil {
		return err
	}
	e.params.density.Store(uint32(percent))
	return nil
}

// SetPitch changes the speed of grains spawned from now on.
// Non-positive, NaN and infinite values are rejected.
func (e *Engine) SetPitch(multiplier float32) error {
	if err := validPitch(multiplier); err != nil {
		return err
	}
	e.params.pitch.Store(math.Float32bits(multiplier))
	return nil
}

// SampleRate is the host stream rate the engine was configured with.
func (e *Engine) SampleRate() int { return e.sampleRate }

// GrainSize is the length, in samples, given to the next spawned grain.
func (e *Engine) GrainSize() uint16 { return uint16(e.params.loadGrainSize()) }

// Density is the current per-tick spawn probability in percent.
func (e *Engine) Density() uint8 { return uint8(e.params.loadDensity()) }

// Pitch is the read speed given to the next spawned grain.
func (e *Engine) Pitch() float32 { return e.params.loadPitch() }

// Active reports the number of live grains as of the last completed tick.
// It is safe to call from any goroutine.
func (e *Engine) Active() int { return int(e.live.Load()) }

// Reset silences the history and drops every grain. Parameters are kept.
func (e *Engine) Reset() {
	e.history.Reset()
	e.pool.Reset()
	e.tick = 0
	e.live.Store(0)
}
