// SPDX-License-Identifier: EPL-2.0

// Package intsource adapts go-audio decoders, which hand out integer PCM,
// to the float32 audio.Source interface.
package intsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/grainbx/pcm"
)

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams samples from a Reader, scaling them by bit depth.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	buf      *goaudio.IntBuffer
	closer   io.Closer
}

// New wraps dec. format must be non-nil; closer may be nil.
func New(dec Reader, format *goaudio.Format, bitDepth int, closer io.Closer) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		closer:   closer,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i := range n {
		dst[i] = pcm.FromInt(s.buf.Data[i], s.bitDepth)
	}

	switch {
	case err != nil && !errors.Is(err, io.EOF):
		return n, fmt.Errorf("%w", err)
	case err != nil, n < len(dst):
		// go-audio signals the end with a short read
		return n, io.EOF
	}
	return n, nil
}

// Seekable returns r itself when it can seek, or an in-memory copy of its
// remaining bytes otherwise. The go-audio decoders seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bytes.NewReader(data), nil
}
