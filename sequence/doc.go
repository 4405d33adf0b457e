// SPDX-License-Identifier: MIT

// Package sequence defines numeric sequences by an index → value rule and
// enumerates them lazily with a hard length cap.
//
// 🚀 Model
//
//	A Sequence wraps a Definition evaluated at 1-based indices. The
//	definition receives an accessor bound to its own Sequence, so recursive
//	rules are written without capturing the sequence in a closure:
//
//	    fib, _ := sequence.New(func(n uint64, at func(uint64) float64) float64 {
//	      switch n {
//	      case 1:
//	        return 0
//	      case 2:
//	        return 1
//	      }
//	      return at(n-2) + at(n-1)
//	    }, sequence.WithMemo())
//
//	Base cases must be spelled out inside the definition; a rule that never
//	reaches one recurses until the stack is exhausted.
//
// ✨ Enumeration
//
//	Every sequence is conceptually infinite. Enumerate, All and Values stop
//	after MaxEnumerated items (DefaultMaxEnumerated = 100 unless overridden
//	with WithMaxEnumerated), which keeps ranging over a sequence finite.
//
// Specializations:
//
//	NewArithmetic(first, d)  a(n) = first + d·(n-1)
//	NewGeometric(first, q)   g(n) = first · q^(n-1)
//	Fibonacci()              0, 1, 1, 2, 3, 5, …
//
// Concurrency:
//
//	Value is safe for concurrent use; with WithMemo the cache is guarded by
//	a mutex. An Enumerator is a cursor and is not.
package sequence
