// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathext/sampler"
	"github.com/katalvlaran/mathext/valuerange"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		domain   string
		excludes []string
		quantum  float64
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the members of a range on its sampling lattice",
		Example: `  mathext sample --domain "[0, 1]"
  mathext sample --domain "Z[0, 10]" --exclude "[3, 5]" --exclude "(7, 9)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := valuerange.Parse(domain)
			if err != nil {
				return fmt.Errorf("sample: --domain: %w", err)
			}
			for _, s := range excludes {
				e, err := valuerange.Parse(s)
				if err != nil {
					return fmt.Errorf("sample: --exclude: %w", err)
				}
				if err := r.Exclude(e); err != nil {
					return fmt.Errorf("sample: %w", err)
				}
			}
			if !cmd.Flags().Changed("quantum") {
				quantum = a.cfg.Sampler.Quantum
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Sampler.Limit
			}
			if quantum < 0 || math.IsInf(quantum, 0) || math.IsNaN(quantum) {
				return fmt.Errorf("sample: quantum %g must be finite and not negative", quantum)
			}
			if limit < 0 {
				return errors.New("sample: limit must not be negative")
			}
			if limit == 0 && !r.IsBounded() {
				return fmt.Errorf("sample: %s is unbounded; give a positive --limit", r)
			}

			var opts []sampler.Option
			if quantum > 0 {
				opts = append(opts, sampler.WithQuantum(quantum))
			}
			if limit > 0 {
				opts = append(opts, sampler.WithMaxSamples(limit))
			}
			heading := r.String()
			s, err := sampler.New(r, opts...)
			if err != nil {
				return fmt.Errorf("sample: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.styles.heading(fmt.Sprintf("%s step %s", heading, formatFloat(s.Quantum()))))
			for x := range s.All() {
				fmt.Fprintln(out, formatFloat(x))
			}
			a.logger.Debug("sample_done",
				slog.String("range", heading),
				slog.Int("count", s.Count()),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "range in interval notation, e.g. \"[0, 1]\" or \"Z[0, 10]\"")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "sub-range to remove (repeatable)")
	cmd.Flags().Float64Var(&quantum, "quantum", 0, "step size (default from config, then from the range kind)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of samples, 0 for no cap (default from config)")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}
