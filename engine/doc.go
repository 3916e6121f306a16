// SPDX-License-Identifier: EPL-2.0

// Package engine implements a real-time granular effect.
//
// Every call to Engine.Process consumes one input sample and produces one
// output sample. The input is recorded into a circular History of the last
// HistorySize samples. Up to MaxGrains grains play back short stretches of
// that history at the same time, each shaped by a Hann window, and their sum
// is normalized into the output.
//
// # Usage
//
//	eng, err := engine.New(engine.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	for i, s := range input {
//	    output[i] = eng.Process(s)
//	}
//
// # Ticks
//
// A tick does, in order:
//  1. write the input sample to the History
//  2. advance every active grain, reading history at
//     start + floor(age * speed) and scaling it by Hann(age, length)
//  3. with probability Density/100, spawn a grain into the first free slot,
//     starting between Jitter samples and 1 sample behind the write cursor
//  4. divide the sum by activeGrains/MixDivisor and saturate to int16
//
// When fewer than MixDivisor grains were active the tick is silent. A spawn
// with no free slot is dropped.
//
// # Real-time Contract
//
// Process never blocks, never allocates and never fails. It must be called
// from one goroutine. SetGrainSize, SetDensity and SetPitch may be called from
// any goroutine; each parameter is a separate atomic word and changes reach
// the next spawn. Grains already playing keep the values they were spawned
// with.
//
// # Randomness
//
// Spawning draws from the Rand in Config. Supplying NewRand with a fixed seed
// makes runs reproducible bit for bit.
//
// # Diagnostics
//
// A SpawnObserver sees every spawn on the audio goroutine. SpawnLog buffers
// events in a channel, dropping them when full, and Drain prints them from
// another goroutine:
//
//	spawns := engine.NewSpawnLog(256)
//	cfg := engine.DefaultConfig()
//	cfg.Observer = spawns
//	go spawns.Drain(ctx, log.Default())
//
// # Error Handling
//
// New and the Set methods reject bad values with a *ConfigError, which matches
// ErrInvalidConfig and a parameter sentinel such as ErrDensity:
//
//	if err := eng.SetDensity(150); errors.Is(err, engine.ErrDensity) {
//	    // previous density is still in effect
//	}
package engine
