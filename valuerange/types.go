// SPDX-License-Identifier: MIT

package valuerange

// Include selects which bound values are members of a Range.
//
//   - IncludeNone: open interval (a, b).
//   - IncludeMin: half-open [a, b).
//   - IncludeMax: half-open (a, b].
//   - IncludeBoth: closed [a, b].
type Include uint8

const (
	// IncludeNone excludes both bound values.
	IncludeNone Include = iota

	// IncludeMin makes the lower bound a member.
	IncludeMin

	// IncludeMax makes the upper bound a member.
	IncludeMax

	// IncludeBoth makes both bound values members.
	IncludeBoth
)

// includes reports whether the lower (lo) and upper (hi) bounds are members.
func (i Include) includes() (lo, hi bool) {
	return i == IncludeMin || i == IncludeBoth, i == IncludeMax || i == IncludeBoth
}

// IncludeOf assembles an Include from per-bound membership flags.
func IncludeOf(lo, hi bool) Include {
	switch {
	case lo && hi:
		return IncludeBoth
	case lo:
		return IncludeMin
	case hi:
		return IncludeMax
	default:
		return IncludeNone
	}
}

// String renders the flag name.
func (i Include) String() string {
	switch i {
	case IncludeNone:
		return "none"
	case IncludeMin:
		return "min"
	case IncludeMax:
		return "max"
	case IncludeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Kind distinguishes the real line from the integer lattice.
// Samplers step by a fractional quantum over Continuous ranges and by 1 over
// Discrete ones.
type Kind uint8

const (
	// Continuous ranges model real-number domains.
	Continuous Kind = iota

	// Discrete ranges model integer-lattice domains.
	Discrete
)

// String renders the kind name.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return "unknown"
	}
}
