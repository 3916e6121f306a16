// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"log"
	"sync/atomic"
)

// SpawnEvent describes a grain at the moment it was spawned.
type SpawnEvent struct {
	Tick   uint64
	Slot   int
	Length int
	Pitch  float32
	Start  int
}

// SpawnObserver receives spawn events on the audio goroutine.
// ObserveSpawn must return immediately and must not allocate.
type SpawnObserver interface {
	ObserveSpawn(ev SpawnEvent)
}

// SpawnLog is a SpawnObserver backed by a buffered channel. Events that do not
// fit are dropped and counted, so the audio goroutine never waits on it.
type SpawnLog struct {
	ch      chan SpawnEvent
	dropped atomic.Uint64
}

// NewSpawnLog returns a SpawnLog buffering up to capacity events.
func NewSpawnLog(capacity int) *SpawnLog {
	if capacity < 1 {
		capacity = 1
	}
	return &SpawnLog{ch: make(chan SpawnEvent, capacity)}
}

func (l *SpawnLog) ObserveSpawn(ev SpawnEvent) {
	select {
	case l.ch <- ev:
	default:
		l.dropped.Add(1)
	}
}

// Events exposes the buffered events for callers that consume them directly.
func (l *SpawnLog) Events() <-chan SpawnEvent { return l.ch }

// Dropped is the number of events lost to a full buffer.
func (l *SpawnLog) Dropped() uint64 { return l.dropped.Load() }

// Drain writes each event to logger until ctx is done, then flushes whatever
// is still buffered.
func (l *SpawnLog) Drain(ctx context.Context, logger *log.Logger) {
	for {
		select {
		case <-ctx.Done():
			l.flush(logger)
			return
		case ev := <-l.ch:
			logEvent(logger, ev)
		}
	}
}

func (l *SpawnLog) flush(logger *log.Logger) {
	for {
		select {
		case ev := <-l.ch:
			logEvent(logger, ev)
		default:
			return
		}
	}
}

func logEvent(logger *log.Logger, ev SpawnEvent) {
	logger.Printf("length %d pitch %f pos %d", ev.Length, ev.Pitch, ev.Start)
}
