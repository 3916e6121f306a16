// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

// Hann returns the raised-cosine envelope value for a grain that is age
// samples into a length-sample lifetime. The result is 0 at onset, 1 at the
// midpoint and approaches 0 again as age nears length.
//
// length must be at least 1.
func Hann(age, length int) float32 {
	phase := float64(age) / float64(length)
	return float32(0.5 - 0.5*math.Cos(2*math.Pi*phase))
}
