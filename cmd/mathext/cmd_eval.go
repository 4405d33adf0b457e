// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathext/expr"
	"github.com/katalvlaran/mathext/numeric"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval {sin|cos|exp|sqrt|factorial} X",
		Short: "Evaluate a numeric primitive at X",
		Example: `  mathext eval sin 0.5
  mathext eval factorial 20`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"sin", "cos", "exp", "sqrt", "factorial"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, arg := args[0], args[1]
			var out string
			switch name {
			case "factorial":
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("eval factorial: %w", err)
				}
				v, err := numeric.Factorial(n)
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				out = strconv.FormatUint(v, 10)
			case "sqrt":
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("eval sqrt: %w", err)
				}
				v, err := numeric.Sqrt(x)
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				out = formatFloat(v)
			case "sin", "cos", "exp":
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("eval %s: %w", name, err)
				}
				out = formatFloat(catalog[name].Eval(x))
			default:
				return fmt.Errorf("eval: unknown primitive %q", name)
			}
			a.logger.Debug("eval",
				slog.String("primitive", name),
				slog.String("arg", arg),
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	// X may be negative; stop flag parsing at the primitive name.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newIntegralCmd(a *app) *cobra.Command {
	var (
		fn       string
		poly     string
		n        uint
		from, to float64
	)
	cmd := &cobra.Command{
		Use:     "integral",
		Short:   "Approximate a definite integral with the trapezoidal rule",
		Example: `  mathext integral --func sin --from 0 --to 3.141592653589793 --n 1000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				e   expr.Expr
				err error
			)
			switch {
			case fn != "" && poly != "":
				return errors.New("integral: use either --func or --poly")
			case fn != "":
				e, err = lookupFunc(fn)
			case poly != "":
				e, err = parsePoly(poly)
			default:
				return errors.New("integral: give --func or --poly")
			}
			if err != nil {
				return fmt.Errorf("integral: %w", err)
			}
			v, err := numeric.Integral(e.Eval, n, from, to)
			if err != nil {
				return fmt.Errorf("integral: %w", err)
			}
			a.logger.Debug("integral",
				slog.String("expr", e.String()),
				slog.Uint64("n", uint64(n)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v))
			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "func", "", "named integrand: sin, cos, exp, sqrt, identity, square")
	cmd.Flags().StringVar(&poly, "poly", "", "polynomial integrand, highest degree first, e.g. 1,0,-4")
	cmd.Flags().UintVar(&n, "n", 1000, "number of trapezoids")
	cmd.Flags().Float64Var(&from, "from", 0, "lower integration bound")
	cmd.Flags().Float64Var(&to, "to", 1, "upper integration bound")

	return cmd
}
