// SPDX-License-Identifier: EPL-2.0

// Package control parses the text commands accepted by the live player:
//
//	size 400      grain length in samples
//	density 35    spawn probability in percent
//	pitch 0.5     read speed of new grains
//
// Commands are case-insensitive; blank lines and lines starting with '#'
// are ignored.
package control

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("expected a command and one value")
	ErrBadValue       = errors.New("bad value")
)

// Setter receives parameter changes. *engine.Engine implements it.
type Setter interface {
	SetGrainSize(samples uint16) error
	SetDensity(percent uint8) error
	SetPitch(multiplier float32) error
}

// Apply parses one command line and forwards it to target.
func Apply(target Setter, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("%q: %w", line, ErrUsage)
	}
	cmd, arg := strings.ToLower(fields[0]), fields[1]

	switch cmd {
	case "size", "grain":
		v, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return fmt.Errorf("size %q: %w: %w", arg, ErrBadValue, err)
		}
		return target.SetGrainSize(uint16(v))
	case "density":
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return fmt.Errorf("density %q: %w: %w", arg, ErrBadValue, err)
		}
		return target.SetDensity(uint8(v))
	case "pitch":
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("pitch %q: %w: %w", arg, ErrBadValue, err)
		}
		return target.SetPitch(float32(v))
	default:
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
}
