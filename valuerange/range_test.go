// SPDX-License-Identifier: MIT

package valuerange_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathext/valuerange"
)

// TestNew_Validation checks the construction error classes.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := valuerange.New(2, 1, valuerange.IncludeBoth, valuerange.Continuous)
	assert.ErrorIs(t, err, valuerange.ErrInvalidBounds, "min > max must fail")

	_, err = valuerange.New(math.NaN(), 1, valuerange.IncludeBoth, valuerange.Continuous)
	assert.ErrorIs(t, err, valuerange.ErrInvalidArgument, "NaN bound must fail")

	_, err = valuerange.New(0, 1, valuerange.IncludeBoth, valuerange.Continuous, nil)
	assert.ErrorIs(t, err, valuerange.ErrInvalidArgument, "nil exclude must fail")

	r, err := valuerange.New(1, 1, valuerange.IncludeBoth, valuerange.Discrete)
	require.NoError(t, err, "degenerate [1,1] is valid")
	assert.True(t, r.Contains(1))
}

// TestContains_BoundMembership verifies that a bound is a member iff the
// include flag names it, for every flag.
func TestContains_BoundMembership(t *testing.T) {
	t.Parallel()

	cases := []struct {
		include valuerange.Include
		minIn   bool
		maxIn   bool
	}{
		{valuerange.IncludeNone, false, false},
		{valuerange.IncludeMin, true, false},
		{valuerange.IncludeMax, false, true},
		{valuerange.IncludeBoth, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.include.String(), func(t *testing.T) {
			r, err := valuerange.New(-1, 3, tc.include, valuerange.Continuous)
			require.NoError(t, err)
			assert.Equal(t, tc.minIn, r.Contains(-1), "min membership")
			assert.Equal(t, tc.maxIn, r.Contains(3), "max membership")
			assert.Equal(t, tc.minIn, r.IncludesMin())
			assert.Equal(t, tc.maxIn, r.IncludesMax())
			assert.True(t, r.Contains(1), "interior point")
			assert.False(t, r.Contains(-1.5), "below min")
			assert.False(t, r.Contains(3.5), "above max")
		})
	}
}

// TestContains_NaN ensures NaN is never a member, even of Real.
func TestContains_NaN(t *testing.T) {
	t.Parallel()
	assert.False(t, valuerange.Real().Contains(math.NaN()))
}

// TestNamedRanges checks the Real / Integer / Natural factories.
func TestNamedRanges(t *testing.T) {
	t.Parallel()

	reals := valuerange.Real()
	assert.Equal(t, valuerange.Continuous, reals.Kind())
	assert.True(t, reals.Contains(-1e300))
	assert.False(t, reals.Contains(math.Inf(1)), "open at +Inf")
	assert.False(t, reals.IsBounded())

	integer := valuerange.Integer()
	assert.Equal(t, valuerange.Discrete, integer.Kind())
	assert.True(t, integer.Contains(-7))

	natural := valuerange.Natural()
	assert.Equal(t, valuerange.Discrete, natural.Kind())
	assert.True(t, natural.Contains(0), "0 is natural")
	assert.False(t, natural.Contains(-1))

	// factories hand out independent instances
	require.NoError(t, natural.SetMin(5))
	assert.Equal(t, 0.0, valuerange.Natural().Min())
}

// TestSetters_Ordering verifies that setters re-validate min ≤ max.
func TestSetters_Ordering(t *testing.T) {
	t.Parallel()

	r, err := valuerange.New(0, 10, valuerange.IncludeBoth, valuerange.Continuous)
	require.NoError(t, err)

	assert.ErrorIs(t, r.SetMin(11), valuerange.ErrInvalidBounds)
	assert.ErrorIs(t, r.SetMax(-1), valuerange.ErrInvalidBounds)
	assert.ErrorIs(t, r.SetMax(math.NaN()), valuerange.ErrInvalidArgument)
	assert.Equal(t, 0.0, r.Min(), "failed setter leaves range untouched")
	assert.Equal(t, 10.0, r.Max())

	require.NoError(t, r.SetMin(10), "min == max is allowed")
	require.NoError(t, r.SetMax(math.Inf(1)))
	assert.True(t, r.Contains(1e9))
}

// TestContains_SingleExclude removes an open hole from a closed range.
func TestContains_SingleExclude(t *testing.T) {
	t.Parallel()

	r := valuerange.MustParse("[0, 10]")
	require.NoError(t, r.Exclude(valuerange.MustParse("(2, 3)")))

	assert.True(t, r.Contains(2), "hole is open at 2")
	assert.False(t, r.Contains(2.5))
	assert.True(t, r.Contains(3), "hole is open at 3")
	assert.Len(t, r.Excludes(), 1)
}

// TestContains_NestedExcludes exercises two and three levels of nesting,
// evaluated depth-first.
//
//	R = [0, 10] \ { E }
//	E = [2, 8]  \ { H }
//	H = [4, 5]  \ { K }
//	K = (4.4, 4.6)
func TestContains_NestedExcludes(t *testing.T) {
	t.Parallel()

	k := valuerange.MustParse("(4.4, 4.6)")
	h := valuerange.MustParse("[4, 5]")
	e := valuerange.MustParse("[2, 8]")
	r := valuerange.MustParse("[0, 10]")
	require.NoError(t, e.Exclude(h))
	require.NoError(t, r.Exclude(e))

	// two levels: H punches a hole into E, so [4, 5] is back in R
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(3), "inside E")
	assert.True(t, r.Contains(4), "inside H (closed)")
	assert.True(t, r.Contains(4.5), "inside H")
	assert.False(t, r.Contains(7), "inside E")
	assert.True(t, r.Contains(9))

	// three levels: K punches a hole into H, so (4.4, 4.6) is removed again
	require.NoError(t, h.Exclude(k))
	assert.False(t, r.Contains(4.5), "inside K")
	assert.True(t, r.Contains(4.4), "K is open at 4.4")
	assert.True(t, r.Contains(4.2), "inside H, outside K")
}

// TestContains_MultipleExcludes checks that every exclude is honored.
func TestContains_MultipleExcludes(t *testing.T) {
	t.Parallel()

	r, err := valuerange.New(0, 10, valuerange.IncludeBoth, valuerange.Discrete,
		valuerange.MustParse("[1, 2]"), valuerange.MustParse("[5, 6]"))
	require.NoError(t, err)

	for _, v := range []float64{1, 2, 5, 6} {
		assert.False(t, r.Contains(v), "%g excluded", v)
	}
	for _, v := range []float64{0, 3, 4, 7, 10} {
		assert.True(t, r.Contains(v), "%g included", v)
	}
}

// TestClone_Deep ensures a clone is independent of its source.
func TestClone_Deep(t *testing.T) {
	t.Parallel()

	hole := valuerange.MustParse("[2, 3]")
	r := valuerange.MustParse("[0, 10]")
	require.NoError(t, r.Exclude(hole))

	c := r.Clone()
	require.NoError(t, hole.SetMax(9))
	require.NoError(t, r.SetMax(100))

	assert.Equal(t, 10.0, c.Max())
	assert.True(t, c.Contains(5), "clone's exclude kept its old bounds")
	assert.False(t, r.Contains(5))
}

// TestOverlaps covers disjoint, touching and nested bound intervals.
func TestOverlaps(t *testing.T) {
	t.Parallel()

	r := valuerange.MustParse("[0, 10)")
	assert.True(t, r.Overlaps(valuerange.MustParse("[2, 3]")))
	assert.True(t, r.Overlaps(valuerange.MustParse("[-5, 0]")), "touch at included 0")
	assert.False(t, r.Overlaps(valuerange.MustParse("[10, 12]")), "10 is open in r")
	assert.False(t, r.Overlaps(valuerange.MustParse("(-5, 0)")))
	assert.False(t, r.Overlaps(valuerange.MustParse("[11, 12]")))
	assert.False(t, r.Overlaps(nil))
}

// TestString renders nested excludes and discrete prefixes.
func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(-Inf, +Inf)", valuerange.Real().String())
	assert.Equal(t, "Z[0, +Inf)", valuerange.Natural().String())

	r := valuerange.MustParse("[0, 10]")
	e := valuerange.MustParse("[2, 8]")
	require.NoError(t, e.Exclude(valuerange.MustParse("(4, 5)")))
	require.NoError(t, r.Exclude(e))
	assert.Equal(t, `[0, 10] \ {[2, 8] \ {(4, 5)}}`, r.String())
}
