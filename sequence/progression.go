// SPDX-License-Identifier: MIT

package sequence

import "math"

// ArithmeticProgression is a(n) = first + difference·(n-1).
type ArithmeticProgression struct {
	*Sequence
	first      float64
	difference float64
}

// NewArithmetic builds an arithmetic progression. Memoization is pointless
// for a closed form and is left to the caller's options.
func NewArithmetic(first, difference float64, opts ...Option) *ArithmeticProgression {
	ap := &ArithmeticProgression{first: first, difference: difference}
	ap.Sequence = newSequence(ap.term, opts...)

	return ap
}

// DefaultArithmetic returns 1, 2, 3, … (first = 1, difference = 1).
func DefaultArithmetic(opts ...Option) *ArithmeticProgression {
	return NewArithmetic(1, 1, opts...)
}

func (ap *ArithmeticProgression) term(n uint64, _ func(uint64) float64) float64 {
	return ap.first + ap.difference*float64(n-1)
}

// First returns a(1).
func (ap *ArithmeticProgression) First() float64 { return ap.first }

// Difference returns a(n+1) - a(n).
func (ap *ArithmeticProgression) Difference() float64 { return ap.difference }

// GeometricProgression is g(n) = first · ratio^(n-1).
type GeometricProgression struct {
	*Sequence
	first float64
	ratio float64
}

// NewGeometric builds a geometric progression.
func NewGeometric(first, ratio float64, opts ...Option) *GeometricProgression {
	gp := &GeometricProgression{first: first, ratio: ratio}
	gp.Sequence = newSequence(gp.term, opts...)

	return gp
}

// DefaultGeometric returns 1, 2, 4, 8, … (first = 1, ratio = 2).
func DefaultGeometric(opts ...Option) *GeometricProgression {
	return NewGeometric(1, 2, opts...)
}

func (gp *GeometricProgression) term(n uint64, _ func(uint64) float64) float64 {
	return gp.first * math.Pow(gp.ratio, float64(n-1))
}

// First returns g(1).
func (gp *GeometricProgression) First() float64 { return gp.first }

// Ratio returns g(n+1) / g(n).
func (gp *GeometricProgression) Ratio() float64 { return gp.ratio }
