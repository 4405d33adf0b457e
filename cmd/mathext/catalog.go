// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathext/expr"
	"github.com/katalvlaran/mathext/numeric"
)

// catalog maps CLI function names to expressions built on package numeric.
var catalog = map[string]expr.Expr{
	"sin":      expr.Call{Name: "sin", Fn: numeric.Sin, Arg: expr.X},
	"cos":      expr.Call{Name: "cos", Fn: numeric.Cos, Arg: expr.X},
	"exp":      expr.Call{Name: "exp", Fn: numeric.Exp, Arg: expr.X},
	"sqrt":     expr.Call{Name: "sqrt", Fn: sqrtOrNaN, Arg: expr.X},
	"identity": expr.X,
	"square":   expr.Poly(1, 0, 0),
}

// sqrtOrNaN adapts numeric.Sqrt to a total function.
func sqrtOrNaN(x float64) float64 {
	v, err := numeric.Sqrt(x)
	if err != nil {
		return math.NaN()
	}
	return v
}

// catalogNames lists the catalog keys in order.
func catalogNames() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// lookupFunc resolves a catalog name.
func lookupFunc(name string) (expr.Expr, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q (known: %s)", name, strings.Join(catalogNames(), ", "))
	}
	return e, nil
}

// parsePoly reads comma-separated coefficients, highest degree first.
func parsePoly(s string) (expr.Expr, error) {
	fields := strings.Split(s, ",")
	coeffs := make([]float64, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("polynomial %q: coefficient %d: %w", s, i, err)
		}
		coeffs[i] = c
	}
	return expr.Poly(coeffs...), nil
}

// resolveExprs turns --func names and --poly lists into expressions, names
// first, each group in flag order.
func resolveExprs(funcs, polys []string) ([]expr.Expr, error) {
	out := make([]expr.Expr, 0, len(funcs)+len(polys))
	for _, name := range funcs {
		e, err := lookupFunc(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	for _, p := range polys {
		e, err := parsePoly(p)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
