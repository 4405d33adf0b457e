// SPDX-License-Identifier: MIT

// Package expr is a tiny expression tree over one real variable x.
//
// Expressions evaluate like ordinary functions and can also be inspected:
// Classify recognises constants, the identity and unit-slope shifts
// (x + c, c - x, …) so that callers such as package analyzer can answer
// trivial questions without sampling.
//
//	e := expr.Sub{L: expr.X, R: expr.Const(3)}   // x - 3
//	e.Eval(5)                                    // 2
//	expr.Classify(e)                             // Shape{Kind: Shift, Slope: 1, Offset: -3}
package expr

import (
	"math"
	"strconv"
)

// Expr is a real-valued expression in x.
type Expr interface {
	// Eval evaluates the expression at x.
	Eval(x float64) float64
	// String renders the expression in infix form.
	String() string
}

// Const is a constant.
type Const float64

// Eval returns the constant.
func (c Const) Eval(float64) float64 { return float64(c) }

func (c Const) String() string { return strconv.FormatFloat(float64(c), 'g', -1, 64) }

// Var is the variable x.
type Var struct{}

// X is the variable x.
var X = Var{}

// Eval returns x.
func (Var) Eval(x float64) float64 { return x }

func (Var) String() string { return "x" }

// Add is L + R.
type Add struct{ L, R Expr }

// Eval returns L(x) + R(x).
func (a Add) Eval(x float64) float64 { return a.L.Eval(x) + a.R.Eval(x) }

func (a Add) String() string { return "(" + a.L.String() + " + " + a.R.String() + ")" }

// Sub is L - R.
type Sub struct{ L, R Expr }

// Eval returns L(x) - R(x).
func (s Sub) Eval(x float64) float64 { return s.L.Eval(x) - s.R.Eval(x) }

func (s Sub) String() string { return "(" + s.L.String() + " - " + s.R.String() + ")" }

// Mul is L · R.
type Mul struct{ L, R Expr }

// Eval returns L(x) · R(x).
func (m Mul) Eval(x float64) float64 { return m.L.Eval(x) * m.R.Eval(x) }

func (m Mul) String() string { return "(" + m.L.String() + " * " + m.R.String() + ")" }

// Neg is -E.
type Neg struct{ E Expr }

// Eval returns -E(x).
func (n Neg) Eval(x float64) float64 { return -n.E.Eval(x) }

func (n Neg) String() string { return "-" + n.E.String() }

// Call applies a named unary function to Arg.
type Call struct {
	Name string
	Fn   func(float64) float64
	Arg  Expr
}

// Eval returns Fn(Arg(x)); a nil Fn yields NaN.
func (c Call) Eval(x float64) float64 {
	if c.Fn == nil {
		return math.NaN()
	}

	return c.Fn(c.Arg.Eval(x))
}

func (c Call) String() string { return c.Name + "(" + c.Arg.String() + ")" }

// Poly builds c[0]·x^(n-1) + … + c[n-2]·x + c[n-1] (highest degree first).
//
// Zero terms are dropped, a unit linear coefficient becomes a bare x and a
// trailing negative constant becomes a subtraction, so Poly(1, -4) is the
// Sub{X, 4} shape recognised by Classify. Poly() is Const(0).
func Poly(coeffs ...float64) Expr {
	var out Expr
	deg := len(coeffs) - 1
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		p := deg - i
		term := monomial(c, p)
		switch {
		case out == nil:
			out = term
		case p == 0 && c < 0:
			out = Sub{L: out, R: Const(-c)}
		default:
			out = Add{L: out, R: term}
		}
	}
	if out == nil {
		return Const(0)
	}

	return out
}

// monomial renders c·x^p as a product chain.
func monomial(c float64, p int) Expr {
	if p == 0 {
		return Const(c)
	}
	var pow Expr = X
	for k := 1; k < p; k++ {
		pow = Mul{L: pow, R: X}
	}
	switch c {
	case 1:
		return pow
	case -1:
		return Neg{E: pow}
	default:
		return Mul{L: Const(c), R: pow}
	}
}
