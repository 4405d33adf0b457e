// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
)

// Default step sizes per range kind.
const (
	// DefaultContinuousQuantum is the step used over Continuous ranges.
	DefaultContinuousQuantum = 0.25

	// DefaultDiscreteQuantum is the step used over Discrete ranges.
	DefaultDiscreteQuantum = 1.0
)

// samplerConfig holds the resolved knobs of a Sampler.
type samplerConfig struct {
	quantum    float64 // 0 means "derive from range kind"
	maxSamples int     // 0 means uncapped
}

// Option customizes a Sampler at construction.
type Option func(*samplerConfig)

// WithQuantum overrides the step size. Panics unless q is finite and > 0.
// Complexity: O(1).
func WithQuantum(q float64) Option {
	if !(q > 0) || math.IsInf(q, 0) {
		panic(fmt.Sprintf("sampler: WithQuantum(%g)", q))
	}
	return func(c *samplerConfig) {
		c.quantum = q
	}
}

// WithMaxSamples caps the number of yielded values. Zero removes the cap;
// negative values panic.
// Complexity: O(1).
func WithMaxSamples(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sampler: WithMaxSamples(%d)", n))
	}
	return func(c *samplerConfig) {
		c.maxSamples = n
	}
}
