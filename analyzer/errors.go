// SPDX-License-Identifier: MIT

package analyzer

import "errors"

var (
	// ErrNilFunction indicates that New was called without a function, or
	// FromExpr without an expression.
	ErrNilFunction = errors.New("analyzer: function is nil")

	// ErrClosed indicates use of an Analyzer after Close.
	ErrClosed = errors.New("analyzer: analyzer is closed")
)
