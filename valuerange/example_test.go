// SPDX-License-Identifier: MIT

package valuerange_test

import (
	"fmt"

	"github.com/katalvlaran/mathext/valuerange"
)

// ExampleRange_Contains shows a hole that is punched back through by a
// nested exclude.
func ExampleRange_Contains() {
	r := valuerange.MustParse("[0, 10]")
	e := valuerange.MustParse("[2, 8]")
	_ = e.Exclude(valuerange.MustParse("[4, 5]"))
	_ = r.Exclude(e)

	fmt.Println(r)
	fmt.Println(r.Contains(3), r.Contains(4.5), r.Contains(9))
	// Output:
	// [0, 10] \ {[2, 8] \ {[4, 5]}}
	// false true true
}
