// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// MaxFactorialArg is the largest n whose factorial fits in a uint64.
const MaxFactorialArg = 20

// maxNewtonSteps caps Sqrt iterations; quadratic convergence from the
// exponent-based seed needs far fewer.
const maxNewtonSteps = 64

// Sqrt approximates √x by Newton's method, g ← (g + x/g) / 2.
//
// The seed is 2^(e/2) where x = m·2^e, which puts the first guess within a
// factor of two of the root at any magnitude.
//
// Errors:
//   - ErrDomain if x < 0 or x is NaN.
func Sqrt(x float64) (float64, error) {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0, fmt.Errorf("Sqrt(%g): %w", x, ErrDomain)
	case x == 0 || math.IsInf(x, 1):
		return x, nil
	}
	_, exp := math.Frexp(x)
	g := math.Ldexp(1, exp/2)
	for i := 0; i < maxNewtonSteps; i++ {
		next := (g + x/g) / 2
		// the iteration can oscillate between two adjacent floats
		if next == g || next == math.Nextafter(g, next) {
			g = next
			break
		}
		g = next
	}

	return g, nil
}

// Integral approximates ∫_a^b f(x) dx with the composite trapezoidal rule
// over n equal subintervals:
//
//	h·( f(a)/2 + f(a+h) + … + f(b-h) + f(b)/2 ),  h = (b-a)/n
//
// b < a yields the negated integral.
//
// Errors:
//   - ErrInvalidArgument if n == 0 or f is nil.
//
// Complexity: n+1 evaluations of f.
func Integral(f func(float64) float64, n uint, a, b float64) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("Integral: nil integrand: %w", ErrInvalidArgument)
	}
	if n == 0 {
		return 0, fmt.Errorf("Integral: n must be > 0: %w", ErrInvalidArgument)
	}
	h := (b - a) / float64(n)
	sum := (f(a) + f(b)) / 2
	for i := uint(1); i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return sum * h, nil
}

// Factorial returns n!.
//
// Errors:
//   - ErrOverflow if n > MaxFactorialArg.
func Factorial(n uint64) (uint64, error) {
	if n > MaxFactorialArg {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
	}
	out := uint64(1)
	for i := uint64(2); i <= n; i++ {
		out *= i
	}

	return out, nil
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) = 0. The result is unsigned so that
// GCD(math.MinInt64, 0) = 2^63 is representable.
func GCD(a, b int64) uint64 {
	x, y := absU(a), absU(b)
	for y != 0 {
		x, y = y, x%y
	}

	return x
}

// Mod returns the Euclidean remainder of a by m, always in [0, |m|).
//
// Errors:
//   - ErrInvalidArgument if m == 0.
func Mod(a, m int64) (int64, error) {
	if m == 0 {
		return 0, fmt.Errorf("Mod(%d, 0): %w", a, ErrInvalidArgument)
	}
	r := a % m
	if r < 0 {
		if m < 0 {
			r -= m
		} else {
			r += m
		}
	}

	return r, nil
}

// absU returns |v| as uint64 without overflowing on math.MinInt64.
func absU(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}
