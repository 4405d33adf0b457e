// SPDX-License-Identifier: MIT

package analyzer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// Analysis kinds used as metric labels and span names.
const (
	kindZeros        = "zeros"
	kindMonotonicity = "monotonicity"
)

var tracer = otel.Tracer("mathext.analyzer")

var (
	// samplesTotal counts function evaluations made while sampling domains.
	samplesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mathext_analyzer_samples_total",
		Help: "Total function evaluations made while sampling analysis domains",
	})

	// rootsTotal counts roots reported by zero-set computations.
	rootsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mathext_analyzer_roots_total",
		Help: "Total roots reported by zero-set computations",
	})

	// bisectionIterations tracks bisection steps per bracket
	bisectionIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mathext_analyzer_bisection_iterations",
		Help:    "Bisection steps spent refining one bracket",
		Buckets: []float64{0, 1, 5, 10, 20, 40, 60, 100, 200},
	})

	// analysisDuration tracks cache computation latency by kind
	analysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mathext_analyzer_analysis_duration_seconds",
		Help:    "Zero-set and monotonicity computation time in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"kind"})

	// fastPathTotal counts analyses answered from the expression shape
	fastPathTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathext_analyzer_fast_path_total",
		Help: "Analyses answered in closed form without sampling",
	}, []string{"kind"})
)
