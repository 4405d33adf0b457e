// SPDX-License-Identifier: MIT

// Package numeric provides elementary numeric primitives implemented from
// first principles: power-series Sin, Cos and Exp, Newton's-method Sqrt,
// trapezoidal Integral, Factorial, and Euclidean GCD / Mod.
//
// All functions are pure and safe for concurrent use. Domain violations are
// reported through the sentinel errors in errors.go rather than NaN where
// the signature allows it.
//
//	s := numeric.Sin(math.Pi / 6)          // ≈ 0.5
//	r, err := numeric.Sqrt(-1)             // err wraps ErrDomain
//	area, _ := numeric.Integral(f, 1000, 0, 1)
package numeric
