// SPDX-License-Identifier: MIT

package sequence

import "fmt"

// Enumerator is a cursor over the first MaxEnumerated terms of a Sequence.
type Enumerator struct {
	seq   *Sequence
	index uint64 // 0 before the first Next
	value float64
	done  bool
}

// Next advances to the next term. It returns false once MaxEnumerated terms
// have been produced.
func (e *Enumerator) Next() bool {
	if e.done || e.index >= e.seq.maxEnumerated {
		e.done = true
		return false
	}
	e.index++
	e.value = e.seq.at(e.index)

	return true
}

// Current returns the term produced by the last successful Next.
//
// Errors:
//   - ErrInvalidState before the first Next or after exhaustion.
func (e *Enumerator) Current() (float64, error) {
	if e.index == 0 || e.done {
		return 0, fmt.Errorf("Current: index %d: %w", e.index, ErrInvalidState)
	}

	return e.value, nil
}

// Index returns the 1-based index of the current term, or 0 before start.
func (e *Enumerator) Index() uint64 { return e.index }

// Reset rewinds the cursor to before the first term.
func (e *Enumerator) Reset() {
	e.index = 0
	e.value = 0
	e.done = false
}
