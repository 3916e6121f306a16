// SPDX-License-Identifier: EPL-2.0

package engine

// HistorySize is the number of input samples grains can reach back into.
// It must stay a power of two.
const HistorySize = 2048

const historyMask = HistorySize - 1

// History is a circular store of the most recent HistorySize input samples.
// The zero value holds silence with the cursor at 0.
type History struct {
	buf    [HistorySize]int16
	cursor int
}

// Write stores s at the cursor and advances it, overwriting the oldest sample.
func (h *History) Write(s int16) {
	h.buf[h.cursor] = s
	h.cursor = (h.cursor + 1) & historyMask
}

// Read returns the sample at offset modulo HistorySize. Negative offsets wrap.
func (h *History) Read(offset int) int16 {
	return h.buf[offset&historyMask]
}

// Cursor is the index the next Write will overwrite.
func (h *History) Cursor() int { return h.cursor }

// Latest returns the most recently written sample.
func (h *History) Latest() int16 { return h.Read(h.cursor - 1) }

// Reset fills the buffer with silence and rewinds the cursor.
func (h *History) Reset() {
	clear(h.buf[:])
	h.cursor = 0
}
