// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"iter"
	"math"
	"sync"
)

// DefaultMaxEnumerated bounds enumeration when WithMaxEnumerated is not given.
const DefaultMaxEnumerated uint64 = 100

// Definition computes the n-th term (n ≥ 1). The accessor at evaluates the
// owning sequence at another index and is how recursive rules refer to
// earlier terms; at(0) yields NaN.
type Definition func(n uint64, at func(uint64) float64) float64

// config holds the resolved sequence knobs.
type config struct {
	maxEnumerated uint64
	memo          bool
}

// Option customizes a Sequence.
type Option func(*config)

// WithMaxEnumerated sets how many terms Enumerate, All and Values produce.
// Zero yields an empty enumeration.
func WithMaxEnumerated(n uint64) Option {
	return func(c *config) {
		c.maxEnumerated = n
	}
}

// WithMemo caches every evaluated term. Recommended for recursive rules,
// which otherwise re-evaluate shared subterms exponentially often.
func WithMemo() Option {
	return func(c *config) {
		c.memo = true
	}
}

// Sequence is an index → value rule plus an enumeration cap.
type Sequence struct {
	def           Definition
	maxEnumerated uint64
	memo          bool

	mu    sync.RWMutex
	cache map[uint64]float64
}

// New wraps def.
//
// Errors:
//   - ErrNilDefinition if def is nil.
func New(def Definition, opts ...Option) (*Sequence, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	return newSequence(def, opts...), nil
}

// newSequence builds a Sequence from a definition known to be non-nil.
func newSequence(def Definition, opts ...Option) *Sequence {
	cfg := config{maxEnumerated: DefaultMaxEnumerated}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Sequence{def: def, maxEnumerated: cfg.maxEnumerated, memo: cfg.memo}
	if s.memo {
		s.cache = make(map[uint64]float64)
	}

	return s
}

// Identity returns the sequence 1, 2, 3, ….
func Identity(opts ...Option) *Sequence {
	return newSequence(func(n uint64, _ func(uint64) float64) float64 {
		return float64(n)
	}, opts...)
}

// Fibonacci returns 0, 1, 1, 2, 3, 5, … defined recursively through the
// accessor. Memoization is always on.
func Fibonacci(opts ...Option) *Sequence {
	return newSequence(func(n uint64, at func(uint64) float64) float64 {
		switch n {
		case 1:
			return 0
		case 2:
			return 1
		default:
			return at(n-2) + at(n-1)
		}
	}, append([]Option{WithMemo()}, opts...)...)
}

// Value evaluates the n-th term (1-based).
//
// Errors:
//   - ErrIndexOutOfRange if n == 0.
//
// Complexity: one definition call per uncached index reached.
func (s *Sequence) Value(n uint64) (float64, error) {
	if n == 0 {
		return 0, fmt.Errorf("Value(0): %w", ErrIndexOutOfRange)
	}

	return s.at(n), nil
}

// at is the accessor handed to the definition.
// The lock is not held across the definition call, so recursive lookups
// never deadlock; two goroutines may compute the same term, which is
// harmless for a pure definition.
func (s *Sequence) at(n uint64) float64 {
	if n == 0 {
		return math.NaN()
	}
	if !s.memo {
		return s.def(n, s.at)
	}

	s.mu.RLock()
	v, ok := s.cache[n]
	s.mu.RUnlock()
	if ok {
		return v
	}
	v = s.def(n, s.at)
	s.mu.Lock()
	s.cache[n] = v
	s.mu.Unlock()

	return v
}

// MaxEnumerated returns the enumeration cap.
func (s *Sequence) MaxEnumerated() uint64 { return s.maxEnumerated }

// Enumerate returns a fresh cursor positioned before the first term.
func (s *Sequence) Enumerate() *Enumerator {
	return &Enumerator{seq: s}
}

// All iterates (index, value) pairs for indices 1..MaxEnumerated.
func (s *Sequence) All() iter.Seq2[uint64, float64] {
	return func(yield func(uint64, float64) bool) {
		for n := uint64(1); n <= s.maxEnumerated; n++ {
			if !yield(n, s.at(n)) {
				return
			}
		}
	}
}

// Values materialises the capped enumeration.
// Complexity: O(MaxEnumerated) definition calls (fewer with memo).
func (s *Sequence) Values() []float64 {
	out := make([]float64, 0, min(s.maxEnumerated, DefaultMaxEnumerated))
	for _, v := range s.All() {
		out = append(out, v)
	}

	return out
}
