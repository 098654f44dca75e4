// SPDX-License-Identifier: MIT

package poly

import "errors"

// ErrUnsupportedDivisor is returned by Ring.Div when the divisor is anything
// other than ε or ε². General polynomial division is not provided.
var ErrUnsupportedDivisor = errors.New("poly: unsupported divisor (only ε and ε² are allowed)")
