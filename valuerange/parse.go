// SPDX-License-Identifier: MIT

package valuerange

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// discretePrefix marks a Discrete range in interval notation.
const discretePrefix = "Z"

// discretePrefixAlt is the blackboard-bold alias accepted by Parse.
const discretePrefixAlt = "ℤ"

// Parse reads a range written in interval notation.
//
// Accepted forms (whitespace is ignored around tokens):
//
//	[a, b]   (a, b)   [a, b)   (a, b]
//	Z[0, inf)            discrete range
//	(-inf, +inf)         unbounded
//
// Bounds are anything strconv.ParseFloat accepts except NaN ("inf",
// "+Inf", "-infinity", "1e3", ...). Excludes are not part of the notation;
// attach them with Exclude.
//
// Errors:
//   - ErrInvalidArgument for malformed text or NaN bounds.
//   - ErrInvalidBounds when the lower bound is greater than the upper one.
func Parse(s string) (*Range, error) {
	text := strings.TrimSpace(s)
	kind := Continuous
	switch {
	case strings.HasPrefix(text, discretePrefix):
		kind = Discrete
		text = strings.TrimSpace(strings.TrimPrefix(text, discretePrefix))
	case strings.HasPrefix(text, discretePrefixAlt):
		kind = Discrete
		text = strings.TrimSpace(strings.TrimPrefix(text, discretePrefixAlt))
	}
	if len(text) < 2 {
		return nil, fmt.Errorf("Parse(%q): too short: %w", s, ErrInvalidArgument)
	}

	var lo, hi bool
	switch text[0] {
	case '[':
		lo = true
	case '(':
	default:
		return nil, fmt.Errorf("Parse(%q): expected '[' or '(': %w", s, ErrInvalidArgument)
	}
	switch text[len(text)-1] {
	case ']':
		hi = true
	case ')':
	default:
		return nil, fmt.Errorf("Parse(%q): expected ']' or ')': %w", s, ErrInvalidArgument)
	}

	parts := strings.Split(text[1:len(text)-1], ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("Parse(%q): expected two bounds: %w", s, ErrInvalidArgument)
	}
	min, err := parseBound(parts[0])
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): lower bound: %w", s, err)
	}
	max, err := parseBound(parts[1])
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): upper bound: %w", s, err)
	}

	return New(min, max, IncludeOf(lo, hi), kind)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// parseBound converts one bound token to a float64, rejecting NaN.
func parseBound(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrInvalidArgument)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%q is NaN: %w", tok, ErrInvalidArgument)
	}

	return v, nil
}

// formatBound renders a bound so that parseBound reads it back exactly.
func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
