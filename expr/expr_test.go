// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mathext/expr"
)

// TestEval covers every node type.
func TestEval(t *testing.T) {
	t.Parallel()

	e := expr.Sub{
		L: expr.Mul{L: expr.X, R: expr.X},
		R: expr.Add{L: expr.Const(1), R: expr.Neg{E: expr.Call{Name: "abs", Fn: math.Abs, Arg: expr.X}}},
	}
	// x² - (1 + -|x|) at x = -3 → 9 - (1 - 3) = 11
	assert.Equal(t, 11.0, e.Eval(-3))
	assert.Equal(t, "((x * x) - (1 + -abs(x)))", e.String())

	assert.True(t, math.IsNaN(expr.Call{Name: "nil", Arg: expr.X}.Eval(1)), "nil Fn yields NaN")
}

// TestPoly checks evaluation and the simplified tree it builds.
func TestPoly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		coeffs []float64
		str    string
		at2    float64
	}{
		{nil, "0", 0},
		{[]float64{5}, "5", 5},
		{[]float64{1, 0}, "x", 2},
		{[]float64{1, -4}, "(x - 4)", -2},
		{[]float64{-1, 3}, "(-x + 3)", 1},
		{[]float64{1, 0, -4}, "((x * x) - 4)", 0},
		{[]float64{2, -3, 1}, "(((2 * (x * x)) + (-3 * x)) + 1)", 3},
		{[]float64{0, 0, 7}, "7", 7},
	}
	for _, tc := range cases {
		p := expr.Poly(tc.coeffs...)
		assert.Equal(t, tc.str, p.String(), "Poly(%v)", tc.coeffs)
		assert.Equal(t, tc.at2, p.Eval(2), "Poly(%v)(2)", tc.coeffs)
	}
}

// TestClassify covers every recognised shape and some rejections.
func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		e    expr.Expr
		want expr.Shape
	}{
		{"const", expr.Const(5), expr.Shape{Kind: expr.Constant, Offset: 5}},
		{"folded const", expr.Mul{L: expr.Const(2), R: expr.Add{L: expr.Const(1), R: expr.Const(2)}}, expr.Shape{Kind: expr.Constant, Offset: 6}},
		{"x - x", expr.Sub{L: expr.X, R: expr.X}, expr.Shape{Kind: expr.Constant}},
		{"identity", expr.X, expr.Shape{Kind: expr.Identity, Slope: 1}},
		{"x + 0", expr.Add{L: expr.X, R: expr.Const(0)}, expr.Shape{Kind: expr.Identity, Slope: 1}},
		{"x + 3", expr.Add{L: expr.X, R: expr.Const(3)}, expr.Shape{Kind: expr.Shift, Slope: 1, Offset: 3}},
		{"3 + x", expr.Add{L: expr.Const(3), R: expr.X}, expr.Shape{Kind: expr.Shift, Slope: 1, Offset: 3}},
		{"x - 3", expr.Poly(1, -3), expr.Shape{Kind: expr.Shift, Slope: 1, Offset: -3}},
		{"3 - x", expr.Sub{L: expr.Const(3), R: expr.X}, expr.Shape{Kind: expr.Shift, Slope: -1, Offset: 3}},
		{"-x", expr.Neg{E: expr.X}, expr.Shape{Kind: expr.Shift, Slope: -1}},
		{"x + x", expr.Add{L: expr.X, R: expr.X}, expr.Shape{Kind: expr.Unknown}},
		{"2x", expr.Mul{L: expr.Const(2), R: expr.X}, expr.Shape{Kind: expr.Unknown}},
		{"x²", expr.Poly(1, 0, 0), expr.Shape{Kind: expr.Unknown}},
		{"call", expr.Call{Name: "sin", Fn: math.Sin, Arg: expr.X}, expr.Shape{Kind: expr.Unknown}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expr.Classify(tc.e))
		})
	}
}

// TestShapeRoot checks the closed-form zero of linear shapes.
func TestShapeRoot(t *testing.T) {
	t.Parallel()

	x, ok := expr.Classify(expr.Sub{L: expr.Const(3), R: expr.X}).Root()
	assert.True(t, ok)
	assert.Equal(t, 3.0, x)

	x, ok = expr.Classify(expr.X).Root()
	assert.True(t, ok)
	assert.Equal(t, 0.0, x)

	_, ok = expr.Classify(expr.Const(1)).Root()
	assert.False(t, ok)
}
