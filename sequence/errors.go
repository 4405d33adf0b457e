// SPDX-License-Identifier: MIT

package sequence

import "errors"

var (
	// ErrNilDefinition indicates that New received a nil Definition.
	ErrNilDefinition = errors.New("sequence: definition is nil")

	// ErrIndexOutOfRange indicates a zero index; sequences are 1-based.
	ErrIndexOutOfRange = errors.New("sequence: index must be >= 1")

	// ErrInvalidState indicates that an Enumerator was read while not
	// positioned on an item.
	ErrInvalidState = errors.New("sequence: enumerator is not positioned")
)
