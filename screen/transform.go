package screen

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a position in document space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Transform is a 2D affine transform in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

func Translate(x, y float64) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

func Scale(x, y float64) Transform {
	return Transform{A: x, E: y}
}

// Rotate returns a rotation by angle radians about the origin.
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply returns t * o, which applies o first and then t.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.B*o.D,
		B: t.A*o.B + t.B*o.E,
		C: t.A*o.C + t.B*o.F + t.C,
		D: t.D*o.A + t.E*o.D,
		E: t.D*o.B + t.E*o.E,
		F: t.D*o.C + t.E*o.F + t.F,
	}
}

// Then returns the transform that applies t and then o.
func (t Transform) Then(o Transform) Transform {
	return o.Multiply(t)
}

func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

func (t Transform) Determinant() float64 {
	return t.A*t.E - t.B*t.D
}

// Invert returns the inverse transform. ok is false when t is singular.
func (t Transform) Invert() (inv Transform, ok bool) {
	det := t.Determinant()
	if det == 0 {
		return Transform{}, false
	}
	inv = Transform{
		A: t.E / det,
		B: -t.B / det,
		D: -t.D / det,
		E: t.A / det,
	}
	inv.C = -(inv.A*t.C + inv.B*t.F)
	inv.F = -(inv.D*t.C + inv.E*t.F)
	return inv, true
}

func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// LineScale is the factor by which t stretches stroke widths.
func (t Transform) LineScale() float64 {
	return math.Sqrt(math.Abs(t.Determinant()))
}

// Aff3 converts t for use with golang.org/x/image/draw.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
}
