package svgxform

import "math"

// Viewport builds the WCS -> SVG affine transform (§4.2): translate by
// -xmin, flip Y around the page height, translate by +ymin. Expressed
// as a Matrix2D so every emitter composes it with block/INSERT
// transforms using the same Mult chaining rather than special-casing
// the viewport step.
func Viewport(xmin, ymin, pageHeight float64) Matrix2D {
	return Matrix2D{A: 1, D: -1, E: -xmin, F: pageHeight + ymin}
}

// NegateAngle converts a CAD CCW-radians angle into the degrees value an
// SVG rotate() should use, accounting for the Y-flip (§4.2 "Angles").
func NegateAngle(radiansCCW float64) float64 {
	return -(radiansCCW * 180.0 / math.Pi)
}
