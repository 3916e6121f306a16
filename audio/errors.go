// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidRate    = errors.New("sample rate must be positive")
	ErrUnknownFormat  = errors.New("no decoder registered for format")
	ErrNotMono        = errors.New("source must be mono")
	ErrRateMismatch   = errors.New("source sample rate differs from engine sample rate")
)
