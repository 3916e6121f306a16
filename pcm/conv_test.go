// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestFromFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale positive", input: 1, want: math.MaxInt16},
		{name: "full scale negative", input: -1, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamp above", input: 1.5, want: math.MaxInt16},
		{name: "clamp below", input: -7, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FromFloat32(tt.input)
			if diff := math.Abs(float64(got) - float64(tt.want)); diff > 1 {
				t.Errorf("FromFloat32(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []int16{math.MinInt16, -16384, -1, 0, 1, 16384, math.MaxInt16} {
		f := ToFloat32(s)
		if f < -1 || f >= 1 {
			t.Errorf("ToFloat32(%d) = %v, outside [-1, 1)", s, f)
		}

		back := FromFloat32(f)
		if diff := math.Abs(float64(back) - float64(s)); diff > 1 {
			t.Errorf("FromFloat32(ToFloat32(%d)) = %d", s, back)
		}
	}
}

func TestSaturate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{-1, -1},
		{math.MaxInt16, math.MaxInt16},
		{math.MaxInt16 + 1, math.MaxInt16},
		{math.MinInt16, math.MinInt16},
		{math.MinInt16 - 1, math.MinInt16},
		{16 * math.MaxInt16, math.MaxInt16},
		{16 * math.MinInt16, math.MinInt16},
	}

	for _, tt := range tests {
		if got := Saturate(tt.in); got != tt.want {
			t.Errorf("Saturate(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     float32
	}{
		{name: "8-bit half", v: 64, bitDepth: 8, want: 0.5},
		{name: "16-bit negative full", v: -32768, bitDepth: 16, want: -1},
		{name: "24-bit quarter", v: 2097152, bitDepth: 24, want: 0.25},
		{name: "32-bit half", v: 1073741824, bitDepth: 32, want: 0.5},
		{name: "unknown depth treated as 16", v: 16384, bitDepth: 12, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FromInt(tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("FromInt(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestSaturate_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Saturate(1 << 20)
	})

	if allocs > 0 {
		t.Errorf("Saturate allocated %v times, want 0", allocs)
	}
}

func BenchmarkFromFloat32(b *testing.B) {
	in := make([]float32, 8000)
	out := make([]int16, 8000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()

	for range b.N {
		for j := range in {
			out[j] = FromFloat32(in[j])
		}
	}
}
