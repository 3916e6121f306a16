// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"
)

func TestSpawnLog_DropsWhenFull(t *testing.T) {
	t.Parallel()

	l := NewSpawnLog(2)
	for i := range 5 {
		l.ObserveSpawn(SpawnEvent{Slot: i})
	}

	if got := len(l.Events()); got != 2 {
		t.Errorf("buffered events = %d, want 2", got)
	}
	if got := l.Dropped(); got != 3 {
		t.Errorf("Dropped() = %d, want 3", got)
	}

	// oldest events survive
	if ev := <-l.Events(); ev.Slot != 0 {
		t.Errorf("first event slot = %d, want 0", ev.Slot)
	}
}

func TestSpawnLog_MinimumCapacity(t *testing.T) {
	t.Parallel()

	l := NewSpawnLog(0)
	l.ObserveSpawn(SpawnEvent{})
	if len(l.Events()) != 1 || l.Dropped() != 0 {
		t.Errorf("capacity 0 log buffered %d and dropped %d", len(l.Events()), l.Dropped())
	}
}

func TestSpawnLog_Drain(t *testing.T) {
	t.Parallel()

	l := NewSpawnLog(8)
	l.ObserveSpawn(SpawnEvent{Length: 200, Pitch: 1, Start: 1500})
	l.ObserveSpawn(SpawnEvent{Length: 64, Pitch: 0.5, Start: 3})

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Drain(ctx, logger)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for len(l.Events()) > 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	want := "length 200 pitch 1.000000 pos 1500\nlength 64 pitch 0.500000 pos 3\n"
	if got := buf.String(); got != want {
		t.Errorf("Drain() wrote %q, want %q", got, want)
	}
}

func TestSpawnLog_DrainStopsOnCancel(t *testing.T) {
	t.Parallel()

	l := NewSpawnLog(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		l.Drain(ctx, log.New(&strings.Builder{}, "", 0))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Drain() did not return after cancel")
	}
}

func TestSpawnLog_DrainFlushesOnCancel(t *testing.T) {
	t.Parallel()

	l := NewSpawnLog(4)
	for i := range 3 {
		l.ObserveSpawn(SpawnEvent{Length: 10, Pitch: 2, Start: i})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	l.Drain(ctx, log.New(&buf, "", 0))

	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("Drain() after cancel wrote %d lines, want 3:\n%s", got, buf.String())
	}
	if len(l.Events()) != 0 {
		t.Errorf("%d events left buffered", len(l.Events()))
	}
}
