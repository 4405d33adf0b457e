// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mathext/expr"
	"github.com/katalvlaran/mathext/valuerange"
)

const (
	// DefaultTolerance is the residual |f(x)| below which bisection stops,
	// and the distance under which two roots are considered the same.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps bisection steps per bracket.
	DefaultMaxIterations = 200

	// DefaultWindow clamps infinite domain sides to [-DefaultWindow, +DefaultWindow].
	DefaultWindow = 100.0

	// DefaultMaxSamples caps the number of function evaluations made while
	// sampling one domain.
	DefaultMaxSamples = 1 << 20
)

// config holds the resolved knobs of an Analyzer.
type config struct {
	domain        *valuerange.Range
	expr          expr.Expr
	tolerance     float64
	maxIterations int
	quantum       float64 // 0 = sampler default for the domain kind
	windowLo      float64
	windowHi      float64
	maxSamples    int
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		windowLo:      -DefaultWindow,
		windowHi:      DefaultWindow,
		maxSamples:    DefaultMaxSamples,
	}
}

// Option customizes an Analyzer at construction.
type Option func(*config)

// WithDomain sets the analysis domain (default valuerange.Real()).
// The Analyzer keeps its own deep copy. Panics on nil.
func WithDomain(r *valuerange.Range) Option {
	if r == nil {
		panic("analyzer: WithDomain(nil)")
	}
	return func(c *config) {
		c.domain = r.Clone()
	}
}

// WithExpr supplies a symbolic form of f used only to detect fast paths.
// The caller guarantees that e evaluates like f. Panics on nil.
func WithExpr(e expr.Expr) Option {
	if e == nil {
		panic("analyzer: WithExpr(nil)")
	}
	return func(c *config) {
		c.expr = e
	}
}

// WithTolerance sets the root tolerance. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("analyzer: WithTolerance(%g)", tol))
	}
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithMaxIterations caps bisection steps. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("analyzer: WithMaxIterations(%d)", n))
	}
	return func(c *config) {
		c.maxIterations = n
	}
}

// WithQuantum overrides the sampling step. Panics unless q is finite and > 0.
func WithQuantum(q float64) Option {
	if !(q > 0) || math.IsInf(q, 0) {
		panic(fmt.Sprintf("analyzer: WithQuantum(%g)", q))
	}
	return func(c *config) {
		c.quantum = q
	}
}

// WithWindow sets the finite bounds substituted for infinite domain sides.
// Panics unless lo < hi and both are finite.
func WithWindow(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic(fmt.Sprintf("analyzer: WithWindow(%g, %g)", lo, hi))
	}
	return func(c *config) {
		c.windowLo, c.windowHi = lo, hi
	}
}

// WithMaxSamples caps function evaluations per sampling pass. Panics if n < 1.
func WithMaxSamples(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("analyzer: WithMaxSamples(%d)", n))
	}
	return func(c *config) {
		c.maxSamples = n
	}
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("analyzer: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
