// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mathext/analyzer"
	"github.com/katalvlaran/mathext/expr"
	"github.com/katalvlaran/mathext/valuerange"
)

// analysis is the printable result for one function.
type analysis struct {
	e     expr.Expr
	zeros []float64
	mono  []analyzer.Interval
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		funcs  []string
		polys  []string
		domain string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Find roots and monotonic pieces of functions over a domain",
		Long: `Runs one analyzer per function concurrently and prints the zero set and
the monotonicity partition of each. Named functions come first, then
polynomials, each group in flag order.`,
		Example: `  mathext analyze --func sin --domain "[-4, 4]"
  mathext analyze --poly 1,0,-4 --poly 1,-3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exprs, err := resolveExprs(funcs, polys)
			if err != nil {
				return err
			}
			if len(exprs) == 0 {
				return errors.New("analyze: give at least one --func or --poly")
			}
			if domain == "" {
				domain = a.cfg.Analyzer.Domain
			}
			d, err := valuerange.Parse(domain)
			if err != nil {
				return fmt.Errorf("analyze: --domain: %w", err)
			}

			results := make([]analysis, len(exprs))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, e := range exprs {
				g.Go(func() error {
					opts := append(a.cfg.Analyzer.Options(d), analyzer.WithLogger(a.logger))
					an, err := analyzer.FromExpr(e, opts...)
					if err != nil {
						return err
					}
					defer an.Close()

					zeros, err := an.ZeroSetContext(ctx)
					if err != nil {
						return fmt.Errorf("analyze %s: %w", e, err)
					}
					mono, err := an.MonotonicityContext(ctx)
					if err != nil {
						return fmt.Errorf("analyze %s: %w", e, err)
					}
					results[i] = analysis{e: e, zeros: zeros, mono: mono}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			a.logger.Debug("analyze_done", slog.Int("functions", len(results)))

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, a.styles.heading(fmt.Sprintf("%s on %s", r.e, d)))
				zs := "none"
				if len(r.zeros) > 0 {
					zs = joinFloats(r.zeros)
				}
				fmt.Fprintf(out, "  %s %s\n", a.styles.label("zeros:"), zs)
				fmt.Fprintf(out, "  %s\n", a.styles.label("monotonicity:"))
				for _, iv := range r.mono {
					fmt.Fprintf(out, "    %s %s\n", iv.Range, iv.Trend)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&funcs, "func", nil, "named function to analyze (repeatable): sin, cos, exp, sqrt, identity, square")
	cmd.Flags().StringArrayVar(&polys, "poly", nil, "polynomial coefficients, highest degree first (repeatable), e.g. 1,0,-4")
	cmd.Flags().StringVar(&domain, "domain", "", "analysis domain in interval notation (default from config)")

	return cmd
}
