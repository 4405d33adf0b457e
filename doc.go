// Package mathext is a small numeric toolkit: value ranges with nested
// exclusions, lattice samplers, lazily evaluated sequences, a function
// analyzer and a handful of elementary primitives built from first
// principles.
//
// 🚀 What is inside?
//
//	valuerange/  intervals with open/closed bounds, ±Inf, kinds and excludes
//	sampler/     forward cursor over the members of a range
//	sequence/    1-based sequences, Fibonacci, arithmetic and geometric progressions
//	analyzer/    zero sets and monotonicity of real functions over a range
//	expr/        tiny expression trees used for analyzer fast paths
//	numeric/     series Sin/Cos/Exp, Newton Sqrt, trapezoid Integral, Factorial, GCD, Mod
//	cmd/mathext  command-line front end (analyze, sample, sequence, eval, integral)
//
// ✨ Quick taste:
//
//	r := valuerange.MustParse("[0, 1]")
//	s, _ := sampler.New(r)
//	for x := range s.All() { … }          // 0, 0.25, 0.5, 0.75, 1
//
//	a, _ := analyzer.FromExpr(expr.Poly(1, 0, -4))
//	roots, _ := a.ZeroSet()                 // [-2 2]
//
// Every package reports failures through sentinel errors declared in its
// errors.go; branch on them with errors.Is.
package mathext
