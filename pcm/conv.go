// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the sample-level conversions shared by the engine and the
// audio pipeline: float/int16 conversion, saturation and interpolation.
package pcm

import "math"

// FromFloat32 converts a normalized sample in [-1, 1] to int16.
// Values outside the range are clamped first.
func FromFloat32(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from wrapping
	return int16(x * math.MaxInt16)
}

// ToFloat32 converts an int16 sample to the normalized [-1, 1) range.
func ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}

// Saturate narrows v to int16, clamping instead of wrapping.
func Saturate(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// FromInt normalizes an integer PCM value of the given bit depth to float32.
// Unknown depths are treated as 16-bit.
func FromInt(v int, bitDepth int) float32 {
	var full float32
	switch bitDepth {
	case 8:
		full = 128.0
	case 24:
		full = 8388608.0
	case 32:
		full = 2147483648.0
	default:
		full = 32768.0
	}
	return float32(v) / full
}
