// SPDX-License-Identifier: MIT

package valuerange_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathext/valuerange"
)

// TestParse_Valid covers every bracket combination, infinities and the
// discrete prefixes.
func TestParse_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		min     float64
		max     float64
		include valuerange.Include
		kind    valuerange.Kind
	}{
		{"[0, 1]", 0, 1, valuerange.IncludeBoth, valuerange.Continuous},
		{"(0, 1)", 0, 1, valuerange.IncludeNone, valuerange.Continuous},
		{"[0,1)", 0, 1, valuerange.IncludeMin, valuerange.Continuous},
		{" (-2.5 , 1e3] ", -2.5, 1000, valuerange.IncludeMax, valuerange.Continuous},
		{"(-inf, +inf)", math.Inf(-1), math.Inf(1), valuerange.IncludeNone, valuerange.Continuous},
		{"Z[0, Inf)", 0, math.Inf(1), valuerange.IncludeMin, valuerange.Discrete},
		{"ℤ(-infinity, 3]", math.Inf(-1), 3, valuerange.IncludeMax, valuerange.Discrete},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := valuerange.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.min, r.Min())
			assert.Equal(t, tc.max, r.Max())
			assert.Equal(t, tc.include, r.Include())
			assert.Equal(t, tc.kind, r.Kind())
		})
	}
}

// TestParse_Invalid checks that malformed input maps onto the sentinels.
func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "[", "0, 1", "[0 1]", "[0, 1, 2]", "{0, 1}", "[a, 1]", "[NaN, 1]", "[0, 1}"} {
		_, err := valuerange.Parse(in)
		assert.ErrorIs(t, err, valuerange.ErrInvalidArgument, "input %q", in)
	}

	_, err := valuerange.Parse("[3, 1]")
	assert.ErrorIs(t, err, valuerange.ErrInvalidBounds)
}

// TestParse_StringRoundTrip ensures String output parses back to an equal range.
func TestParse_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []*valuerange.Range{valuerange.Real(), valuerange.Integer(), valuerange.Natural(), valuerange.MustParse("(0.125, 7]")} {
		back, err := valuerange.Parse(r.String())
		require.NoError(t, err, r.String())
		assert.Equal(t, r.String(), back.String())
	}
}

// TestMustParse_Panics documents the panic contract of MustParse.
func TestMustParse_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { valuerange.MustParse("nope") })
}
