// SPDX-License-Identifier: EPL-2.0

package engine

import "testing"

// seqRand replays vals in order, cycling, ignoring the requested range.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Range(low, high int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Rand = NewRand(1)
	if mutate != nil {
		mutate(&cfg)
	}

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}
