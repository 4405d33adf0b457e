// SPDX-License-Identifier: MIT

package valuerange

import (
	"fmt"
	"math"
	"strings"
)

// Range is a one-dimensional numeric domain.
//
// Invariant: min ≤ max at all times. Bounds may be ±Inf. The zero value is
// the degenerate open interval (0, 0), which contains nothing.
type Range struct {
	min      float64
	max      float64
	include  Include
	kind     Kind
	excludes []*Range
}

// New builds a Range from explicit bounds.
//
// Errors:
//   - ErrInvalidArgument if a bound is NaN or an exclude is nil.
//   - ErrInvalidBounds if min > max.
//
// Complexity: O(len(excludes)).
func New(min, max float64, include Include, kind Kind, excludes ...*Range) (*Range, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, fmt.Errorf("New: NaN bound: %w", ErrInvalidArgument)
	}
	if min > max {
		return nil, fmt.Errorf("New: %g > %g: %w", min, max, ErrInvalidBounds)
	}
	r := &Range{min: min, max: max, include: include, kind: kind}
	if err := r.Exclude(excludes...); err != nil {
		return nil, err
	}

	return r, nil
}

// Real returns the unbounded continuous domain (-Inf, +Inf).
func Real() *Range {
	return &Range{min: math.Inf(-1), max: math.Inf(1), include: IncludeNone, kind: Continuous}
}

// Integer returns the unbounded discrete domain ℤ.
func Integer() *Range {
	return &Range{min: math.Inf(-1), max: math.Inf(1), include: IncludeNone, kind: Discrete}
}

// Natural returns the discrete domain [0, +Inf).
func Natural() *Range {
	return &Range{min: 0, max: math.Inf(1), include: IncludeMin, kind: Discrete}
}

// Min returns the lower bound.
func (r *Range) Min() float64 { return r.min }

// Max returns the upper bound.
func (r *Range) Max() float64 { return r.max }

// Include returns the bound membership flags.
func (r *Range) Include() Include { return r.include }

// Kind reports whether the range is continuous or discrete.
func (r *Range) Kind() Kind { return r.kind }

// IncludesMin reports whether the lower bound value is a member candidate.
func (r *Range) IncludesMin() bool {
	lo, _ := r.include.includes()
	return lo
}

// IncludesMax reports whether the upper bound value is a member candidate.
func (r *Range) IncludesMax() bool {
	_, hi := r.include.includes()
	return hi
}

// IsBounded reports whether both bounds are finite.
func (r *Range) IsBounded() bool {
	return !math.IsInf(r.min, 0) && !math.IsInf(r.max, 0)
}

// SetMin moves the lower bound. It fails with ErrInvalidBounds when v > Max.
func (r *Range) SetMin(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("SetMin: NaN: %w", ErrInvalidArgument)
	}
	if v > r.max {
		return fmt.Errorf("SetMin(%g): max is %g: %w", v, r.max, ErrInvalidBounds)
	}
	r.min = v

	return nil
}

// SetMax moves the upper bound. It fails with ErrInvalidBounds when v < Min.
func (r *Range) SetMax(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("SetMax: NaN: %w", ErrInvalidArgument)
	}
	if v < r.min {
		return fmt.Errorf("SetMax(%g): min is %g: %w", v, r.min, ErrInvalidBounds)
	}
	r.max = v

	return nil
}

// Exclude appends sub-ranges whose members are removed from r.
// Nothing is appended if any argument is nil.
func (r *Range) Exclude(rs ...*Range) error {
	for i, e := range rs {
		if e == nil {
			return fmt.Errorf("Exclude: exclude #%d is nil: %w", i, ErrInvalidArgument)
		}
	}
	r.excludes = append(r.excludes, rs...)

	return nil
}

// Excludes returns the direct excludes in insertion order.
// The slice is a copy; the ranges are shared.
func (r *Range) Excludes() []*Range {
	out := make([]*Range, len(r.excludes))
	copy(out, r.excludes)

	return out
}

// Contains reports whether v is a member of r.
//
// Steps:
//  1. Reject v outside [min, max], and v equal to an open bound.
//  2. Reject v if any exclude contains it. Excludes are evaluated with
//     Contains as well, so an exclude's own excludes re-admit values
//     (depth-first, the outer exclude wins unless punched through).
//
// NaN is never contained.
// Complexity: O(total number of nested excludes).
func (r *Range) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	lo, hi := r.include.includes()
	if v < r.min || (v == r.min && !lo) {
		return false
	}
	if v > r.max || (v == r.max && !hi) {
		return false
	}
	for _, e := range r.excludes {
		if e.Contains(v) {
			return false
		}
	}

	return true
}

// Overlaps reports whether the bound intervals of r and o intersect.
// Excludes are ignored.
func (r *Range) Overlaps(o *Range) bool {
	if o == nil {
		return false
	}
	if o.max < r.min || o.min > r.max {
		return false
	}
	if o.max == r.min {
		return o.IncludesMax() && r.IncludesMin()
	}
	if o.min == r.max {
		return o.IncludesMin() && r.IncludesMax()
	}

	return true
}

// Clone returns a deep copy of r, nested excludes included.
func (r *Range) Clone() *Range {
	c := &Range{min: r.min, max: r.max, include: r.include, kind: r.kind}
	if len(r.excludes) > 0 {
		c.excludes = make([]*Range, len(r.excludes))
		for i, e := range r.excludes {
			c.excludes[i] = e.Clone()
		}
	}

	return c
}

// String renders r in interval notation. Discrete ranges carry a "Z" prefix
// and excludes are listed after a set-difference sign:
//
//	Z[0, +Inf)
//	[0, 10] \ {[2, 8] \ {(4, 5)}}
//
// The output is accepted by Parse for ranges without excludes.
func (r *Range) String() string {
	var sb strings.Builder
	lo, hi := r.include.includes()
	if r.kind == Discrete {
		sb.WriteString(discretePrefix)
	}
	if lo {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(formatBound(r.min))
	sb.WriteString(", ")
	sb.WriteString(formatBound(r.max))
	if hi {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	if len(r.excludes) > 0 {
		sb.WriteString(" \\ {")
		for i, e := range r.excludes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte('}')
	}

	return sb.String()
}
