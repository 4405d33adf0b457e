// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mathext/expr"
	"github.com/katalvlaran/mathext/sampler"
	"github.com/katalvlaran/mathext/valuerange"
)

// Func is a real function of one real variable.
type Func func(float64) float64

// Trend classifies f over a sub-range.
type Trend uint8

const (
	// Constant: consecutive samples are equal.
	Constant Trend = iota
	// Increasing: consecutive samples rise.
	Increasing
	// Decreasing: consecutive samples fall.
	Decreasing
)

// String renders the trend name.
func (t Trend) String() string {
	switch t {
	case Constant:
		return "constant"
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

// Interval is one monotonicity entry: f follows Trend over Range.
type Interval struct {
	Range *valuerange.Range
	Trend Trend
}

// Analyzer computes and caches the zero set and monotonicity of a function
// over a domain.
type Analyzer struct {
	mu     sync.Mutex
	f      Func
	domain *valuerange.Range
	shape  expr.Shape
	cfg    config
	log    *slog.Logger

	zeros     []float64
	zerosDone bool
	mono      []Interval
	monoDone  bool
	closed    bool
}

// New creates an Analyzer for f. The domain defaults to valuerange.Real().
//
// Errors:
//   - ErrNilFunction if f is nil.
//
// Complexity: O(len(opts)); no sampling happens until a result is requested.
func New(f Func, opts ...Option) (*Analyzer, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.domain == nil {
		cfg.domain = valuerange.Real()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	a := &Analyzer{
		f:      f,
		domain: cfg.domain,
		cfg:    cfg,
		log:    cfg.logger.With(slog.String("component", "analyzer")),
	}
	if cfg.expr != nil {
		a.shape = expr.Classify(cfg.expr)
	}

	return a, nil
}

// FromExpr creates an Analyzer whose function is e.Eval and whose fast-path
// classifier is e itself.
//
// Errors:
//   - ErrNilFunction if e is nil.
func FromExpr(e expr.Expr, opts ...Option) (*Analyzer, error) {
	if e == nil {
		return nil, ErrNilFunction
	}

	return New(e.Eval, append(slices.Clone(opts), WithExpr(e))...)
}

// Domain returns a copy of the analysis domain.
//
// Errors:
//   - ErrClosed after Close.
func (a *Analyzer) Domain() (*valuerange.Range, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, fmt.Errorf("Domain: %w", ErrClosed)
	}

	return a.domain.Clone(), nil
}

// ZeroSet is ZeroSetContext with context.Background().
func (a *Analyzer) ZeroSet() ([]float64, error) {
	return a.ZeroSetContext(context.Background())
}

// ZeroSetContext returns the roots of f in the domain, ascending and
// deduplicated within the tolerance. The first call computes and caches the
// result; later calls return a copy of the cache.
//
// Steps:
//  1. Fast path: a constant c ≠ 0 has no roots; a unit-slope shift has its
//     closed-form root when the domain contains it.
//  2. Otherwise sample the (windowed) domain and bisect every consecutive
//     finite pair whose values do not share a sign.
//
// Errors:
//   - ErrClosed after Close.
//   - ctx.Err() if ctx ends while sampling; nothing is cached then.
//
// Complexity: O(S + B·I) for S samples, B brackets, I bisection steps.
func (a *Analyzer) ZeroSetContext(ctx context.Context) ([]float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, fmt.Errorf("ZeroSet: %w", ErrClosed)
	}
	if a.zerosDone {
		return slices.Clone(a.zeros), nil
	}

	start := time.Now()
	ctx, span := tracer.Start(ctx, "analyzer.Analyzer.ZeroSet",
		trace.WithAttributes(
			attribute.String("domain", a.domain.String()),
			attribute.String("shape", a.shape.Kind.String()),
		),
	)
	defer span.End()

	roots, fast := a.zerosFastPath()
	if fast {
		fastPathTotal.WithLabelValues(kindZeros).Inc()
		span.SetAttributes(attribute.Bool("fast_path", true))
	} else {
		pts, _, err := a.sample(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "sampling aborted")
			return nil, fmt.Errorf("ZeroSet: %w", err)
		}
		roots = a.findZeros(pts)
		span.SetAttributes(attribute.Int("samples", len(pts)))
	}

	a.zeros, a.zerosDone = roots, true
	rootsTotal.Add(float64(len(roots)))
	elapsed := time.Since(start)
	analysisDuration.WithLabelValues(kindZeros).Observe(elapsed.Seconds())
	span.SetAttributes(attribute.Int("roots", len(roots)))
	span.SetStatus(codes.Ok, "zero set computed")
	a.log.Debug("zero_set_computed",
		slog.String("domain", a.domain.String()),
		slog.Int("roots", len(roots)),
		slog.Bool("fast_path", fast),
		slog.Duration("elapsed", elapsed),
	)

	return slices.Clone(roots), nil
}

// Monotonicity is MonotonicityContext with context.Background().
func (a *Analyzer) Monotonicity() ([]Interval, error) {
	return a.MonotonicityContext(context.Background())
}

// MonotonicityContext partitions the domain into maximal sub-ranges on which
// consecutive samples share a Trend. Entries are ordered, cover the domain
// end to end, and carry copies of the domain excludes they overlap.
// When WithMaxSamples stops sampling early, the last entry ends (inclusively)
// at the last sample instead of the domain max.
//
// Errors:
//   - ErrClosed after Close.
//   - ctx.Err() if ctx ends while sampling; nothing is cached then.
//
// Complexity: O(S) for S samples.
func (a *Analyzer) MonotonicityContext(ctx context.Context) ([]Interval, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, fmt.Errorf("Monotonicity: %w", ErrClosed)
	}
	if a.monoDone {
		return cloneIntervals(a.mono), nil
	}

	start := time.Now()
	ctx, span := tracer.Start(ctx, "analyzer.Analyzer.Monotonicity",
		trace.WithAttributes(
			attribute.String("domain", a.domain.String()),
			attribute.String("shape", a.shape.Kind.String()),
		),
	)
	defer span.End()

	entries, fast := a.monotonicityFastPath()
	if fast {
		fastPathTotal.WithLabelValues(kindMonotonicity).Inc()
		span.SetAttributes(attribute.Bool("fast_path", true))
	} else {
		pts, truncated, err := a.sample(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "sampling aborted")
			return nil, fmt.Errorf("Monotonicity: %w", err)
		}
		span.SetAttributes(attribute.Bool("truncated", truncated))
		entries, err = a.partition(pts, truncated)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "partition failed")
			return nil, fmt.Errorf("Monotonicity: %w", err)
		}
		span.SetAttributes(attribute.Int("samples", len(pts)))
	}

	a.mono, a.monoDone = entries, true
	elapsed := time.Since(start)
	analysisDuration.WithLabelValues(kindMonotonicity).Observe(elapsed.Seconds())
	span.SetAttributes(attribute.Int("entries", len(entries)))
	span.SetStatus(codes.Ok, "monotonicity computed")
	a.log.Debug("monotonicity_computed",
		slog.String("domain", a.domain.String()),
		slog.Int("entries", len(entries)),
		slog.Bool("fast_path", fast),
		slog.Duration("elapsed", elapsed),
	)

	return cloneIntervals(entries), nil
}

// Close releases f, the domain and both caches. Later calls return
// ErrClosed. Close itself is idempotent and always returns nil.
func (a *Analyzer) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.f = nil
	a.domain = nil
	a.zeros, a.zerosDone = nil, false
	a.mono, a.monoDone = nil, false
	a.closed = true

	return nil
}

// zerosFastPath answers ZeroSet from the expression shape when possible.
func (a *Analyzer) zerosFastPath() ([]float64, bool) {
	switch a.shape.Kind {
	case expr.Constant:
		if a.shape.Offset == 0 {
			return nil, false
		}
		return []float64{}, true
	case expr.Identity, expr.Shift:
		root, _ := a.shape.Root()
		if a.domain.Contains(root) {
			return []float64{root}, true
		}
		return []float64{}, true
	default:
		return nil, false
	}
}

// monotonicityFastPath answers Monotonicity from the expression shape when
// possible.
func (a *Analyzer) monotonicityFastPath() ([]Interval, bool) {
	switch a.shape.Kind {
	case expr.Constant:
		return []Interval{{Range: a.domain.Clone(), Trend: Constant}}, true
	case expr.Identity, expr.Shift:
		t := Increasing
		if a.shape.Slope < 0 {
			t = Decreasing
		}
		return []Interval{{Range: a.domain.Clone(), Trend: t}}, true
	default:
		return nil, false
	}
}

// point is one evaluated sample.
type point struct {
	x, y float64
}

// ctxCheckEvery is how many samples pass between context checks.
const ctxCheckEvery = 256

// sample evaluates f on the sampler lattice of the windowed domain.
// truncated reports that the sample cap stopped the walk before the probe's
// upper bound.
func (a *Analyzer) sample(ctx context.Context) (pts []point, truncated bool, err error) {
	probe, err := a.probeRange()
	if err != nil {
		return nil, false, err
	}
	opts := []sampler.Option{sampler.WithMaxSamples(a.cfg.maxSamples)}
	if a.cfg.quantum > 0 {
		opts = append(opts, sampler.WithQuantum(a.cfg.quantum))
	}
	s, err := sampler.New(probe, opts...)
	if err != nil {
		return nil, false, err
	}

	pts = make([]point, 0, 64)
	for x := range s.All() {
		if len(pts)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, false, err
			}
		}
		pts = append(pts, point{x: x, y: a.f(x)})
	}
	samplesTotal.Add(float64(len(pts)))
	if n := len(pts); n == a.cfg.maxSamples && pts[n-1].x < probe.Max() {
		truncated = true
		a.log.Warn("sample_cap_reached",
			slog.String("domain", probe.String()),
			slog.Int("max_samples", a.cfg.maxSamples),
			slog.Float64("last_sample", pts[n-1].x),
		)
	}

	return pts, truncated, nil
}

// probeRange clones the domain with infinite sides clamped to the analysis
// window. A clamped side is inclusive. When the domain lies entirely beyond
// the window on one side, the window width is kept and shifted to start at
// the finite bound.
func (a *Analyzer) probeRange() (*valuerange.Range, error) {
	d := a.domain
	lo, hi := d.Min(), d.Max()
	loIn, hiIn := d.IncludesMin(), d.IncludesMax()
	width := a.cfg.windowHi - a.cfg.windowLo
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		lo, hi, loIn, hiIn = a.cfg.windowLo, a.cfg.windowHi, true, true
	case math.IsInf(lo, -1):
		lo, loIn = math.Min(a.cfg.windowLo, hi-width), true
	case math.IsInf(hi, 1):
		hi, hiIn = math.Max(a.cfg.windowHi, lo+width), true
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		// Degenerate domains such as [+Inf, +Inf] hold no finite samples.
		lo, hi, loIn, hiIn = 0, 0, false, false
	}
	r, err := valuerange.New(lo, hi, valuerange.IncludeOf(loIn, hiIn), d.Kind())
	if err != nil {
		return nil, err
	}
	for _, e := range d.Excludes() {
		if err := r.Exclude(e.Clone()); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// cloneIntervals deep-copies entries so callers cannot alter the cache.
func cloneIntervals(in []Interval) []Interval {
	out := make([]Interval, len(in))
	for i, iv := range in {
		out[i] = Interval{Range: iv.Range.Clone(), Trend: iv.Trend}
	}

	return out
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
