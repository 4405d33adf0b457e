// SPDX-License-Identifier: MIT

// Package valuerange models one-dimensional numeric domains with open or
// closed bounds, an optional integer lattice and nested exclusions.
//
// 🚀 What is a Range?
//
//	A Range is the set of float64 values between Min and Max. Each bound is
//	either a member of the set (closed) or not (open), and either bound may be
//	infinite. Ranges may carry excludes: sub-ranges whose members are removed.
//	An exclude can itself carry excludes, which punch holes back into the
//	parent set:
//
//	    [0, 10] \ { [2, 8] \ { [4, 5] } }
//
//	contains 1, 4.5 and 9 but not 3 or 7.
//
// ✨ Key features:
//   - Include flags per bound (IncludeNone, IncludeMin, IncludeMax, IncludeBoth)
//   - Continuous or Discrete kind (consumed by package sampler for step sizes)
//   - Named domains: Real, Integer, Natural
//   - Parse / String round trip in interval notation
//
// ⚙️ Usage:
//
//	r, err := valuerange.New(0, 10, valuerange.IncludeBoth, valuerange.Continuous)
//	if err != nil {
//	  // ErrInvalidBounds or ErrInvalidArgument
//	}
//	hole, _ := valuerange.Parse("(2, 3)")
//	_ = r.Exclude(hole)
//	r.Contains(2.5) // false
//
// Concurrency:
//
//	Contains, Min, Max and String are read-only and safe to call concurrently
//	as long as no goroutine mutates the Range (SetMin, SetMax, Exclude) at the
//	same time.
package valuerange
