// Package svgxform implements the coordinate transforms between a DWG
// entity's Object Coordinate System, the drawing's World Coordinate
// System, and the SVG viewport (§4.2).
package svgxform

import "math"

// Matrix2D is a 2D affine transform, representing the matrix
//
//	[ A C E ]
//	[ B D F ]
//	[ 0 0 1 ]
//
// in the same column layout an SVG matrix(a,b,c,d,e,f) transform uses.
// This type generalizes the matrix method-chaining pattern used
// throughout this codebase's vector-graphics lineage (Identity,
// Translate, Rotate, Scale, composed via Mult) to the viewport and
// block-instancing affines this renderer needs.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the no-op transform.
var Identity = Matrix2D{A: 1, D: 1}

// Translate returns Identity translated by (x, y), pre-composed with m.
func (m Matrix2D) Translate(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Scale returns m scaled by (sx, sy).
func (m Matrix2D) Scale(sx, sy float64) Matrix2D {
	return m.Mult(Matrix2D{A: sx, D: sy})
}

// Rotate returns m rotated by radians (mathematical CCW convention,
// before any Y-flip the caller composes separately).
func (m Matrix2D) Rotate(radians float64) Matrix2D {
	s, c := math.Sin(radians), math.Cos(radians)
	return m.Mult(Matrix2D{A: c, B: s, C: -s, D: c})
}

// Mult composes m then other: a point is transformed by m first, then
// by other. Matches the teacher lineage's left-to-right chaining order
// (Identity.Translate(...).Rotate(...)) applied to points.
func (m Matrix2D) Mult(other Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix2D) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// String renders m as an SVG matrix(...) transform function value.
func (m Matrix2D) String() string {
	return fmtMatrix(m.A, m.B, m.C, m.D, m.E, m.F)
}
