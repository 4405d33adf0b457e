// SPDX-License-Identifier: MIT

package expr

// ShapeKind names a recognised expression form.
type ShapeKind uint8

const (
	// Unknown: no fast path applies.
	Unknown ShapeKind = iota
	// Constant: f(x) = Offset.
	Constant
	// Identity: f(x) = x.
	Identity
	// Shift: f(x) = Slope·x + Offset with Slope = ±1.
	Shift
)

// String renders the kind name.
func (k ShapeKind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Identity:
		return "identity"
	case Shift:
		return "shift"
	default:
		return "unknown"
	}
}

// Shape is the result of Classify. For Identity and Shift the function is
// Slope·x + Offset; for Constant only Offset is meaningful.
type Shape struct {
	Kind   ShapeKind
	Slope  float64
	Offset float64
}

// Root returns the x with Slope·x + Offset = 0 for Identity and Shift
// shapes; ok is false for the other kinds.
func (s Shape) Root() (x float64, ok bool) {
	if s.Kind != Identity && s.Kind != Shift {
		return 0, false
	}

	return -s.Offset / s.Slope, true
}

// Classify recognises constants (after folding constant-only subtrees), the
// identity x, and unit-slope shifts x + c, c + x, x - c, c - x, -x.
// Anything else is Unknown.
func Classify(e Expr) Shape {
	sh, ok := linear(e)
	if !ok {
		return Shape{Kind: Unknown}
	}
	switch {
	case sh.Slope == 0:
		return Shape{Kind: Constant, Offset: sh.Offset}
	case sh.Slope == 1 && sh.Offset == 0:
		return Shape{Kind: Identity, Slope: 1}
	default:
		return Shape{Kind: Shift, Slope: sh.Slope, Offset: sh.Offset}
	}
}

// linear reduces e to Slope·x + Offset when e is a constant or a unit-slope
// shift, and reports false otherwise.
func linear(e Expr) (Shape, bool) {
	switch n := e.(type) {
	case Const:
		return Shape{Offset: float64(n)}, true
	case Var:
		return Shape{Slope: 1}, true
	case Neg:
		s, ok := linear(n.E)
		return Shape{Slope: -s.Slope, Offset: -s.Offset}, ok
	case Add:
		return combine(n.L, n.R, 1)
	case Sub:
		return combine(n.L, n.R, -1)
	case Mul:
		l, lok := linear(n.L)
		r, rok := linear(n.R)
		if !lok || !rok {
			return Shape{}, false
		}
		// only constant products stay within the recognised forms
		if l.Slope == 0 && r.Slope == 0 {
			return Shape{Offset: l.Offset * r.Offset}, true
		}
		return Shape{}, false
	default:
		return Shape{}, false
	}
}

// combine folds L ± R, keeping the slope within {-1, 0, 1}.
func combine(l, r Expr, sign float64) (Shape, bool) {
	ls, lok := linear(l)
	rs, rok := linear(r)
	if !lok || !rok {
		return Shape{}, false
	}
	out := Shape{Slope: ls.Slope + sign*rs.Slope, Offset: ls.Offset + sign*rs.Offset}
	if out.Slope != 0 && out.Slope != 1 && out.Slope != -1 {
		return Shape{}, false
	}

	return out, true
}
