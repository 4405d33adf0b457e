// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/mathext/valuerange"
)

// State is the lifecycle stage of a Sampler.
type State uint8

const (
	// NotStarted: no value has been produced yet.
	NotStarted State = iota

	// Positioned: Current returns the last produced value.
	Positioned

	// Exhausted: terminal until Reset.
	Exhausted
)

// String renders the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Positioned:
		return "positioned"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Sampler is a forward cursor over the members of a Range that lie on the
// quantum lattice anchored at Min (Continuous) or ceil(Min) (Discrete).
type Sampler struct {
	rng     *valuerange.Range
	quantum float64
	max     int // sample cap, 0 = none
	current float64
	count   int
	state   State
}

// New creates a Sampler over r.
//
// Side effect: infinite bounds of r are replaced in place by the most
// extreme finite float64 values (sentinel bounds). Reset does not undo this.
//
// Errors:
//   - ErrNilRange if r is nil.
//
// Complexity: O(len(opts)).
func New(r *valuerange.Range, opts ...Option) (*Sampler, error) {
	if r == nil {
		return nil, ErrNilRange
	}
	cfg := samplerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.quantum == 0 {
		cfg.quantum = DefaultContinuousQuantum
		if r.Kind() == valuerange.Discrete {
			cfg.quantum = DefaultDiscreteQuantum
		}
	}
	if err := substituteSentinels(r); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Sampler{rng: r, quantum: cfg.quantum, max: cfg.maxSamples}, nil
}

// substituteSentinels swaps ±Inf bounds for ∓/±math.MaxFloat64, ordering the
// two setter calls so that min ≤ max holds after each of them.
func substituteSentinels(r *valuerange.Range) error {
	lo, hi := finite(r.Min()), finite(r.Max())
	if lo > r.Max() {
		if err := r.SetMax(hi); err != nil {
			return err
		}
		return r.SetMin(lo)
	}
	if err := r.SetMin(lo); err != nil {
		return err
	}

	return r.SetMax(hi)
}

// finite maps ±Inf to ±math.MaxFloat64 and leaves other values unchanged.
func finite(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}

// Next advances to the next member of the range.
//
// Steps:
//  1. The first candidate is Min (Continuous) or ceil(Min) (Discrete);
//     later candidates add one quantum to the current value.
//  2. A candidate above Max, or equal to an open Max, ends enumeration.
//  3. A candidate the range does not contain (open Min, inside an
//     exclude) is skipped without being yielded.
//  4. Reaching the sample cap ends enumeration.
//
// Returns false once the sampler is exhausted.
// Complexity: O(skipped candidates × exclude depth) per call.
func (s *Sampler) Next() bool {
	if s.state == Exhausted {
		return false
	}
	if s.max > 0 && s.count >= s.max {
		s.state = Exhausted
		return false
	}

	var cand float64
	if s.state == NotStarted {
		cand = s.first()
	} else {
		cand = s.step(s.current)
	}
	max, openMax := s.rng.Max(), !s.rng.IncludesMax()
	for {
		if cand > max || (cand == max && openMax) {
			s.state = Exhausted
			return false
		}
		if s.rng.Contains(cand) {
			s.current = cand
			s.count++
			s.state = Positioned
			return true
		}
		cand = s.step(cand)
	}
}

// first returns the lattice anchor for the range kind.
func (s *Sampler) first() float64 {
	if s.rng.Kind() == valuerange.Discrete {
		return math.Ceil(s.rng.Min())
	}

	return s.rng.Min()
}

// step adds one quantum. At magnitudes where the quantum is below float64
// resolution it falls back to the next representable value, so the
// sequence stays strictly increasing.
func (s *Sampler) step(v float64) float64 {
	next := v + s.quantum
	if next <= v {
		next = math.Nextafter(v, math.Inf(1))
	}

	return next
}

// Current returns the value produced by the last successful Next.
//
// Errors:
//   - ErrInvalidState before the first successful Next or after exhaustion.
func (s *Sampler) Current() (float64, error) {
	if s.state != Positioned {
		return 0, fmt.Errorf("Current: state %s: %w", s.state, ErrInvalidState)
	}

	return s.current, nil
}

// Reset rewinds the cursor to NotStarted. The range keeps its sentinel
// bounds; the sample cap starts counting from zero again.
func (s *Sampler) Reset() {
	s.state = NotStarted
	s.current = 0
	s.count = 0
}

// All returns an iterator over the remaining values. Ranging over it drives
// Next; breaking out leaves the cursor on the last yielded value.
//
//	for x := range s.All() {
//	  fmt.Println(x)
//	}
func (s *Sampler) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for s.Next() {
			if !yield(s.current) {
				return
			}
		}
	}
}

// State reports the lifecycle stage.
func (s *Sampler) State() State { return s.state }

// Quantum returns the resolved step size.
func (s *Sampler) Quantum() float64 { return s.quantum }

// Count returns how many values have been yielded since construction or
// the last Reset.
func (s *Sampler) Count() int { return s.count }

// Range returns the target range (with sentinel bounds applied).
func (s *Sampler) Range() *valuerange.Range { return s.rng }
