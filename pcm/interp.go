// SPDX-License-Identifier: EPL-2.0

package pcm

// Cubic performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position in [0, 1]; y0 and y3 are the outer neighbours.
func Cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
