// SPDX-License-Identifier: MIT

package analyzer

import "github.com/katalvlaran/mathext/valuerange"

// run is a maximal stretch of samples [start, end] sharing one trend.
type run struct {
	start, end int
	trend      Trend
}

// trendOf classifies the step from u to v.
func trendOf(u, v float64) Trend {
	switch {
	case v > u:
		return Increasing
	case v < u:
		return Decreasing
	default:
		return Constant
	}
}

// partition merges consecutive finite sample pairs into runs and turns
// every run into an Interval.
//
// Bounds:
//   - the first entry starts at the domain min, the last ends at the domain
//     max, both with the domain's include flags;
//   - inner breakpoints belong to the entry that starts there.
//
// Domain excludes overlapping an entry are cloned onto it.
// A domain with a single finite sample is one Constant entry; one with none
// yields no entries.
//
// truncated marks a walk cut short by the sample cap: the last entry then
// ends at the last finite sample, inclusive, since nothing beyond it was
// observed.
func (a *Analyzer) partition(pts []point, truncated bool) ([]Interval, error) {
	fin := make([]point, 0, len(pts))
	for _, p := range pts {
		if finite(p.y) {
			fin = append(fin, p)
		}
	}
	switch len(fin) {
	case 0:
		return []Interval{}, nil
	case 1:
		if !truncated {
			return []Interval{{Range: a.domain.Clone(), Trend: Constant}}, nil
		}
		d := a.domain
		rng, err := valuerange.New(d.Min(), fin[0].x, valuerange.IncludeOf(d.IncludesMin(), true), d.Kind())
		if err != nil {
			return nil, err
		}
		return []Interval{{Range: rng, Trend: Constant}}, nil
	}

	runs := make([]run, 0, 4)
	for i := 1; i < len(fin); i++ {
		t := trendOf(fin[i-1].y, fin[i].y)
		if n := len(runs); n > 0 && runs[n-1].trend == t {
			runs[n-1].end = i
			continue
		}
		runs = append(runs, run{start: i - 1, end: i, trend: t})
	}

	d := a.domain
	out := make([]Interval, 0, len(runs))
	for k, r := range runs {
		lo, loIn := fin[r.start].x, true
		hi, hiIn := fin[r.end].x, false
		if k == 0 {
			lo, loIn = d.Min(), d.IncludesMin()
		}
		if k == len(runs)-1 {
			hi, hiIn = d.Max(), d.IncludesMax()
			if truncated {
				hi, hiIn = fin[len(fin)-1].x, true
			}
		}
		rng, err := valuerange.New(lo, hi, valuerange.IncludeOf(loIn, hiIn), d.Kind())
		if err != nil {
			return nil, err
		}
		for _, e := range d.Excludes() {
			if rng.Overlaps(e) {
				if err := rng.Exclude(e.Clone()); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, Interval{Range: rng, Trend: r.trend})
	}

	return out, nil
}
