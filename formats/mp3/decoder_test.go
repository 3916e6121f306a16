// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader serves PCM bytes the way gomp3.Decoder does, optionally in
// small pieces to exercise short reads.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	maxRead    int
	err        error
}

func newMockMP3Reader(rate int, samples ...int16) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, data: data}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	if m.maxRead > 0 && len(buf) > m.maxRead {
		buf = buf[:m.maxRead]
	}
	n := copy(buf, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not MP3 data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockMP3Reader(22050)}
	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("metadata = (%d, %d), want (22050, 2)", src.SampleRate(), src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		maxRead int
	}{
		{name: "whole reads", maxRead: 0},
		{name: "fragmented reads", maxRead: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := newMockMP3Reader(44100, 16384, -16384, 0, -32768, 8192, 8192)
			dec.maxRead = tt.maxRead
			src := &source{dec: dec}

			dst := make([]float32, 4)
			n, err := src.ReadSamples(dst)
			if n != 4 || err != nil {
				t.Fatalf("first ReadSamples() = (%d, %v), want (4, nil)", n, err)
			}
			want := []float32{0.5, -0.5, 0, -1}
			for i := range want {
				if dst[i] != want[i] {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
				}
			}

			n, err = src.ReadSamples(dst)
			if n != 2 || !errors.Is(err, io.EOF) {
				t.Fatalf("second ReadSamples() = (%d, %v), want (2, EOF)", n, err)
			}
			if dst[0] != 0.25 || dst[1] != 0.25 {
				t.Errorf("tail = %v, want [0.25 0.25]", dst[:2])
			}
		})
	}
}

func TestSource_WholeFramesOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []int16
		tail    []byte
		dstLen  int
		wantN   int
		wantEOF bool
	}{
		{name: "odd dst", samples: []int16{1, 2, 3, 4, 5, 6}, dstLen: 5, wantN: 4},
		{name: "one slot dst", samples: []int16{1, 2}, dstLen: 1, wantN: 0},
		{name: "half frame at end", samples: []int16{16384, 16384, 8192}, dstLen: 8, wantN: 2, wantEOF: true},
		{name: "half sample at end", samples: []int16{16384, 16384}, tail: []byte{0x7f}, dstLen: 8, wantN: 2, wantEOF: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := newMockMP3Reader(44100, tt.samples...)
			dec.data = append(dec.data, tt.tail...)
			src := &source{dec: dec}

			dst := make([]float32, tt.dstLen)
			n, err := src.ReadSamples(dst)
			if n != tt.wantN || n%2 != 0 {
				t.Errorf("ReadSamples() n = %d, want %d", n, tt.wantN)
			}
			if gotEOF := errors.Is(err, io.EOF); gotEOF != tt.wantEOF || (!gotEOF && err != nil) {
				t.Errorf("ReadSamples() error = %v, want EOF %v", err, tt.wantEOF)
			}
		})
	}
}

func TestSource_OddReadsKeepChannelsAligned(t *testing.T) {
	t.Parallel()

	// left is always positive, right always negative
	samples := make([]int16, 40)
	for i := range samples {
		samples[i] = int16(1000 + i)
		if i%2 == 1 {
			samples[i] = -samples[i]
		}
	}
	src := &source{dec: newMockMP3Reader(44100, samples...)}

	var got []float32
	for size := 1; ; size++ {
		dst := make([]float32, size%7+1)
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if size > 1000 {
			t.Fatal("source never reached EOF")
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, v := range got {
		if (i%2 == 0) != (v > 0) {
			t.Fatalf("sample %d = %v landed on the wrong channel", i, v)
		}
	}
}

func TestSource_PropagatesErrors(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{err: io.ErrClosedPipe}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("ReadSamples() error = %v, want ErrClosedPipe", err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockMP3Reader(44100, 1, 2)}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	dec := newMockMP3Reader(44100, make([]int16, 1<<20)...)
	src := &source{dec: dec}
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := src.ReadSamples(dst); err != nil {
			dec.offset = 0
		}
	}
}
