// SPDX-License-Identifier: MIT

package analyzer

import "math"

// findZeros scans consecutive samples in ascending order.
//
// Steps:
//  1. A finite pair whose values have strictly opposite signs is refined by
//     bisect; a rejected bracket contributes nothing.
//  2. A finite sample that is exactly zero is a root as-is.
//  3. A candidate within tolerance of the last recorded root is dropped.
//
// Non-finite samples never form a bracket, so they split the scan.
func (a *Analyzer) findZeros(pts []point) []float64 {
	roots := make([]float64, 0, 4)
	push := func(x float64) {
		if n := len(roots); n > 0 && x-roots[n-1] < a.cfg.tolerance {
			return
		}
		roots = append(roots, x)
	}

	for i, q := range pts {
		if !finite(q.y) {
			continue
		}
		if i > 0 {
			p := pts[i-1]
			if finite(p.y) && oppositeSigns(p.y, q.y) {
				if x, ok := a.bisect(p, q); ok {
					push(x)
				}
			}
		}
		if q.y == 0 {
			push(q.x)
		}
	}

	return roots
}

// oppositeSigns reports whether u and v are non-zero with different signs.
// Comparing signs avoids the underflow of u*v for tiny magnitudes.
func oppositeSigns(u, v float64) bool {
	return (u < 0 && v > 0) || (u > 0 && v < 0)
}

// bisect halves [p.x, q.x] until |f(mid)| < tolerance, the iteration cap is
// hit, or the bracket cannot shrink further in float64.
//
// A result whose residual is non-finite, or larger than both endpoint
// residuals, marks a pole rather than a root and is rejected (ok = false).
func (a *Analyzer) bisect(p, q point) (root float64, ok bool) {
	lo, flo, hi := p.x, p.y, q.x
	mid, fmid := lo, flo
	iters := 0
	defer func() { bisectionIterations.Observe(float64(iters)) }()

	for iters < a.cfg.maxIterations {
		m := lo + (hi-lo)/2
		if m == lo || m == hi {
			break
		}
		mid, fmid = m, a.f(m)
		iters++
		if math.IsNaN(fmid) {
			return 0, false
		}
		if math.Abs(fmid) < a.cfg.tolerance {
			return mid, true
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	if !finite(fmid) || math.Abs(fmid) > math.Max(math.Abs(p.y), math.Abs(q.y)) {
		return 0, false
	}

	return mid, true
}
