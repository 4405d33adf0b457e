// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrDomain indicates an argument outside the function's domain,
	// e.g. the square root of a negative number.
	ErrDomain = errors.New("numeric: argument outside domain")

	// ErrOverflow indicates a result that does not fit the return type.
	ErrOverflow = errors.New("numeric: result overflows")

	// ErrInvalidArgument indicates a meaningless parameter: zero subdivision
	// count, nil integrand, zero modulus.
	ErrInvalidArgument = errors.New("numeric: invalid argument")
)
