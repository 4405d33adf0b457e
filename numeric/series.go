// SPDX-License-Identifier: MIT

package numeric

import "math"

// Series policy.
const (
	// SeriesEpsilon stops a series once the next term is this small relative
	// to the partial sum.
	SeriesEpsilon = 1e-16

	// MaxSeriesTerms caps the number of terms summed by any series.
	MaxSeriesTerms = 200
)

// twoPi is the period used for argument reduction.
const twoPi = 2 * math.Pi

// Sin approximates sin(x) by its Maclaurin series.
//
// The argument is first reduced into [-π, π], then terms are generated by
// the recurrence t(k) = -t(k-1)·x² / ((2k)(2k+1)), so no factorial is ever
// materialised. NaN and ±Inf yield NaN.
//
// Complexity: O(MaxSeriesTerms) worst case, ~20 terms in practice.
func Sin(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	x = math.Remainder(x, twoPi)
	x2 := x * x
	term, sum := x, x
	for k := 1; k < MaxSeriesTerms; k++ {
		term *= -x2 / float64((2*k)*(2*k+1))
		sum += term
		if converged(term, sum) {
			break
		}
	}

	return sum
}

// Cos approximates cos(x) by its Maclaurin series, with the same reduction
// and recurrence scheme as Sin: t(k) = -t(k-1)·x² / ((2k-1)(2k)).
func Cos(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	x = math.Remainder(x, twoPi)
	x2 := x * x
	term, sum := 1.0, 1.0
	for k := 1; k < MaxSeriesTerms; k++ {
		term *= -x2 / float64((2*k-1)*(2*k))
		sum += term
		if converged(term, sum) {
			break
		}
	}

	return sum
}

// Exp approximates e^x by its Maclaurin series.
//
// Steps:
//  1. Halve x until |x| ≤ 1 (k halvings), so the series converges fast.
//  2. Sum t(k) = t(k-1)·x / k.
//  3. Square the result k times: e^x = (e^(x/2^k))^(2^k).
//
// Overflow saturates to +Inf; -Inf yields 0; NaN yields NaN.
func Exp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 1):
		return math.Inf(1)
	case math.IsInf(x, -1):
		return 0
	}
	halvings := 0
	for math.Abs(x) > 1 {
		x /= 2
		halvings++
	}
	term, sum := 1.0, 1.0
	for k := 1; k < MaxSeriesTerms; k++ {
		term *= x / float64(k)
		sum += term
		if converged(term, sum) {
			break
		}
	}
	for ; halvings > 0; halvings-- {
		sum *= sum
	}

	return sum
}

// converged reports whether term no longer changes sum meaningfully.
func converged(term, sum float64) bool {
	return math.Abs(term) <= SeriesEpsilon*math.Abs(sum) || term == 0
}
