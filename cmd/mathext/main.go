// SPDX-License-Identifier: MIT

// Command mathext explores numeric ranges, sequences and real functions
// from the command line.
//
//	mathext analyze --func sin --domain "[-4, 4]"
//	mathext sample --domain "Z[0, 10]" --exclude "[3, 5]"
//	mathext sequence fibonacci --count 10
//	mathext eval sqrt 2
//	mathext integral --poly 1,0 --from 0 --to 2
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
