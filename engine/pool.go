// SPDX-License-Identifier: EPL-2.0

package engine

// MaxGrains is the number of grain slots in a Pool.
const MaxGrains = 16

// grain is one slot of the pool. Slots are reused in place; an inactive slot
// keeps its last state until the next spawn overwrites it.
type grain struct {
	active bool
	start  int     // history index at spawn time
	age    int     // ticks since spawn
	length int     // lifetime in ticks
	speed  float32 // read advance per tick
}

// Pool is a fixed set of grain slots. The zero value has every slot inactive.
type Pool struct {
	grains [MaxGrains]grain
}

// Mix advances every active grain by one tick and returns the sum of their
// windowed contributions together with the number of grains that were active
// during the tick. Grains that reach their length are deactivated and do not
// contribute to later ticks.
func (p *Pool) Mix(h *History) (sum int32, active int) {
	for i := range p.grains {
		g := &p.grains[i]
		if !g.active {
			continue
		}
		active++

		pos := g.start + int(float32(g.age)*g.speed)
		env := Hann(g.age, g.length)
		sum += int32(float32(h.Read(pos)) * env)

		g.age++
		if g.age >= g.length {
			g.active = false
		}
	}

	return sum, active
}

// Spawn activates the first free slot with a new grain and returns its index.
// When every slot is busy the request is dropped and ok is false.
func (p *Pool) Spawn(start, length int, speed float32) (slot int, ok bool) {
	for i := range p.grains {
		g := &p.grains[i]
		if g.active {
			continue
		}

		*g = grain{
			active: true,
			start:  start & historyMask,
			length: length,
			speed:  speed,
		}
		return i, true
	}

	return -1, false
}

// Active reports how many slots currently hold a live grain.
func (p *Pool) Active() int {
	n := 0
	for i := range p.grains {
		if p.grains[i].active {
			n++
		}
	}
	return n
}

// Reset deactivates every slot.
func (p *Pool) Reset() {
	p.grains = [MaxGrains]grain{}
}
