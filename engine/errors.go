// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every configuration rejection.
	ErrInvalidConfig = errors.New("invalid engine configuration")

	ErrGrainSize  = errors.New("grain size must be at least 1 sample")
	ErrDensity    = errors.New("density must be within [0, 100]")
	ErrPitch      = errors.New("pitch must be a finite value greater than zero")
	ErrSampleRate = errors.New("sample rate must be positive")
	ErrJitter     = errors.New("jitter must be within [1, history size]")
	ErrMixDivisor = errors.New("mix divisor must be positive")
)

// ConfigError reports a rejected parameter value.
// It matches both ErrInvalidConfig and the parameter's own sentinel with errors.Is.
type ConfigError struct {
	Param string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Param, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

func configError(param string, value any, err error) error {
	return &ConfigError{Param: param, Value: value, Err: err}
}
