// SPDX-License-Identifier: EPL-2.0

package grainbx

import (
	"encoding/binary"

	"github.com/ik5/grainbx/engine"
)

// LiveReader is an endless io.Reader of 16-bit little-endian mono PCM, the
// layout audio devices such as oto expect. Every output sample costs one
// engine tick. The input is looped as the live signal; without input the
// engine hears silence.
//
// Read is meant to be called from a single goroutine (the device's pull
// loop). Parameter changes go through the engine's setters, which are safe
// to call concurrently.
type LiveReader struct {
	eng   *engine.Engine
	input []int16
	pos   int

	// high byte of a sample split across two Reads
	carry    byte
	hasCarry bool
}

func NewLiveReader(eng *engine.Engine, input []int16) *LiveReader {
	return &LiveReader{eng: eng, input: input}
}

func (r *LiveReader) next() int16 {
	var in int16
	if len(r.input) > 0 {
		in = r.input[r.pos]
		r.pos++
		if r.pos == len(r.input) {
			r.pos = 0
		}
	}
	return r.eng.Process(in)
}

// Read fills p completely and never returns an error.
func (r *LiveReader) Read(p []byte) (int, error) {
	n := 0
	if r.hasCarry && len(p) > 0 {
		p[0] = r.carry
		r.hasCarry = false
		n = 1
	}

	for ; n+1 < len(p); n += 2 {
		binary.LittleEndian.PutUint16(p[n:], uint16(r.next()))
	}

	if n < len(p) {
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], uint16(r.next()))
		p[n] = tmp[0]
		r.carry = tmp[1]
		r.hasCarry = true
		n++
	}

	return n, nil
}
