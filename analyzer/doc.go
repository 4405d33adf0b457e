// SPDX-License-Identifier: MIT

// Package analyzer answers two questions about a real function over a
// valuerange.Range: where is it zero, and where does it rise or fall.
//
// 🚀 What does it do?
//
//	An Analyzer samples f on the quantum lattice of its domain (see package
//	sampler) and derives, on first request:
//
//	  • ZeroSet       ascending roots, refined by bisection
//	  • Monotonicity  ordered sub-ranges tagged Constant/Increasing/Decreasing
//
//	Both results are cached; repeated calls return equal copies.
//
// ✨ Fast paths
//
//	When the function is supplied as an expr.Expr (FromExpr or WithExpr),
//	constants, the identity and unit-slope shifts such as x - 3 are answered
//	in closed form without sampling. Any other shape falls back to sampling.
//
// ⚙️ Unbounded domains
//
//	Sampling (-Inf, +Inf) is not practical, so infinite sides are clamped to
//	an analysis window (±DefaultWindow unless WithWindow says otherwise) and
//	the clamped side is sampled inclusively. Roots outside the window are not
//	reported. The caller's domain is never modified.
//
// Numerical caveats:
//
//	Roots of even multiplicity that never change sign between samples (for
//	example x² at 0 when 0 is not on the lattice) are not found. A sign
//	change across a pole is rejected when bisection makes the residual grow.
//	Non-finite samples break the bracket chain and are ignored for trends.
//
// Concurrency:
//
//	Analyzer methods are safe for concurrent use; the first computation of
//	each cache runs under the analyzer's mutex. Close releases f, the domain
//	and the caches; every later call returns ErrClosed.
//
// Observability:
//
//	Each analysis runs inside an OpenTelemetry span ("mathext.analyzer")
//	and feeds the Prometheus collectors declared in metrics.go. Debug logs go
//	to the slog.Logger given by WithLogger (slog.Default otherwise).
package analyzer
