// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry and
// opens input files by extension.
//
//	src, err := formats.Open("voice.mp3")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// Registered extensions: wav, wave, aif, aiff, mp3, ogg, oga.
package formats

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/grainbx/audio"
	"github.com/ik5/grainbx/formats/aiff"
	"github.com/ik5/grainbx/formats/mp3"
	"github.com/ik5/grainbx/formats/vorbis"
	"github.com/ik5/grainbx/formats/wav"
)

// NewRegistry returns a registry holding all bundled decoders.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// Open decodes the file at path with the decoder registered for its
// extension. Closing the returned source also closes the file.
func Open(path string) (audio.Source, error) {
	return OpenWith(NewRegistry(), path)
}

// OpenWith is Open with a caller-supplied registry.
func OpenWith(reg *audio.Registry, path string) (audio.Source, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}
