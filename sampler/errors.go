// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrNilRange indicates that New was called without a target range.
	ErrNilRange = errors.New("sampler: range is nil")

	// ErrInvalidState indicates that Current was read while the cursor is
	// not positioned (before the first successful Next, or after exhaustion).
	ErrInvalidState = errors.New("sampler: cursor is not positioned")
)
