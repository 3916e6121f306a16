// SPDX-License-Identifier: EPL-2.0

// Package preset loads engine settings from JSON files. Every field is
// optional; absent fields keep the engine defaults.
//
//	{
//	  "sample_rate": 48000,
//	  "grain_size": 480,
//	  "density": 35,
//	  "pitch": 0.5,
//	  "mix_divisor": 4,
//	  "jitter": 1024,
//	  "seed": 7
//	}
package preset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/grainbx/engine"
)

// File is the JSON schema for grain presets.
type File struct {
	SampleRate *int     `json:"sample_rate"`
	GrainSize  *int     `json:"grain_size"`
	Density    *int     `json:"density"`
	Pitch      *float32 `json:"pitch"`
	MixDivisor *int     `json:"mix_divisor"`
	Jitter     *int     `json:"jitter"`
	Seed       *uint64  `json:"seed"`
}

// LoadJSON reads the preset at path and applies it on top of
// engine.DefaultConfig.
func LoadJSON(path string) (engine.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	pf, err := Parse(f)
	if err != nil {
		return engine.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := engine.DefaultConfig()
	if err := ApplyFile(&cfg, pf); err != nil {
		return engine.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a preset. Unknown keys are rejected so typos do not go
// unnoticed.
func Parse(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &f, nil
}

// ApplyFile overlays the fields set in f onto dst and validates the result.
// dst is left untouched when an error is returned.
func ApplyFile(dst *engine.Config, f *File) error {
	if dst == nil {
		return ErrNilConfig
	}
	if f == nil {
		return nil
	}

	cfg := *dst

	if f.SampleRate != nil {
		cfg.SampleRate = *f.SampleRate
	}
	if f.GrainSize != nil {
		if *f.GrainSize < 1 || *f.GrainSize > math.MaxUint16 {
			return fmt.Errorf("grain_size %d: %w", *f.GrainSize, engine.ErrGrainSize)
		}
		cfg.GrainSize = uint16(*f.GrainSize)
	}
	if f.Density != nil {
		if *f.Density < 0 || *f.Density > engine.MaxDensity {
			return fmt.Errorf("density %d: %w", *f.Density, engine.ErrDensity)
		}
		cfg.Density = uint8(*f.Density)
	}
	if f.Pitch != nil {
		cfg.Pitch = *f.Pitch
	}
	if f.MixDivisor != nil {
		cfg.MixDivisor = *f.MixDivisor
	}
	if f.Jitter != nil {
		cfg.Jitter = *f.Jitter
	}
	if f.Seed != nil {
		cfg.Rand = engine.NewRand(*f.Seed)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	*dst = cfg
	return nil
}
