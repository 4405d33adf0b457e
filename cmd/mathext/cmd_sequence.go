// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathext/sequence"
)

func newSequenceCmd(a *app) *cobra.Command {
	var (
		first      float64
		difference float64
		ratio      float64
		count      uint64
	)
	cmd := &cobra.Command{
		Use:       "sequence {fibonacci|arithmetic|geometric|identity}",
		Short:     "Print the first terms of a sequence",
		Example:   `  mathext sequence geometric --first 3 --ratio 2 --count 5`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"fibonacci", "arithmetic", "geometric", "identity"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Sequence.Count
			}
			if count == 0 {
				return errors.New("sequence: --count must be positive")
			}
			opt := sequence.WithMaxEnumerated(count)

			var seq *sequence.Sequence
			switch args[0] {
			case "fibonacci":
				seq = sequence.Fibonacci(opt)
			case "arithmetic":
				seq = sequence.NewArithmetic(first, difference, opt).Sequence
			case "geometric":
				seq = sequence.NewGeometric(first, ratio, opt).Sequence
			case "identity":
				seq = sequence.Identity(opt)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.styles.heading(args[0]))
			for n, v := range seq.All() {
				fmt.Fprintf(out, "%s %s\n", a.styles.label(fmt.Sprintf("%d", n)), formatFloat(v))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&first, "first", 1, "first term of arithmetic and geometric progressions")
	cmd.Flags().Float64Var(&difference, "difference", 1, "common difference of an arithmetic progression")
	cmd.Flags().Float64Var(&ratio, "ratio", 2, "common ratio of a geometric progression")
	cmd.Flags().Uint64Var(&count, "count", 0, "number of terms (default from config)")

	return cmd
}
