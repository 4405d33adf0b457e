// SPDX-License-Identifier: MIT

package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/mathext/sampler"
	"github.com/katalvlaran/mathext/valuerange"
)

// ExampleSampler_Next walks the naturals with the first 5 values.
func ExampleSampler_Next() {
	s, err := sampler.New(valuerange.Natural(), sampler.WithMaxSamples(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for s.Next() {
		v, _ := s.Current()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 0 1 2 3 4
}

// ExampleSampler_All samples a half-open continuous range with a hole.
func ExampleSampler_All() {
	r := valuerange.MustParse("[0, 2)")
	_ = r.Exclude(valuerange.MustParse("[0.5, 1]"))
	s, _ := sampler.New(r)
	for v := range s.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 0 0.25 1.25 1.5 1.75
}
