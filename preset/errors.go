// SPDX-License-Identifier: EPL-2.0

package preset

import "errors"

var (
	ErrMalformed = errors.New("malformed preset")
	ErrNilConfig = errors.New("nil destination config")
)
