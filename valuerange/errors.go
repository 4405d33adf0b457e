// SPDX-License-Identifier: MIT

package valuerange

import "errors"

// Sentinel errors for range construction and mutation. Callers branch with
// errors.Is; context is attached with %w by the returning function.
var (
	// ErrInvalidBounds indicates that a construction or setter would leave
	// the range with min > max.
	ErrInvalidBounds = errors.New("valuerange: min greater than max")

	// ErrInvalidArgument indicates a malformed input: NaN bound, nil exclude
	// or unparsable interval notation.
	ErrInvalidArgument = errors.New("valuerange: invalid argument")
)
