package svgxform

import "math"

// arbitraryAxisEpsilon is the standard DWG threshold below which an
// extrusion's X/Y components are treated as zero and the OCS is taken
// to be axis-aligned with the WCS (§4.2, GLOSSARY "Arbitrary Axis
// Algorithm").
const arbitraryAxisEpsilon = 1.0 / 64.0

// Point3 is a minimal 3-component point, kept local to this package so
// svgxform has no dependency on dwgmodel; callers convert at the
// boundary.
type Point3 struct{ X, Y, Z float64 }

// ArbitraryAxis derives the OCS basis vectors (Xaxis, Yaxis) for a given
// extrusion (WCS Z axis of the OCS). When the extrusion is close enough
// to +Z or -Z that |nx| < 1/64 and |ny| < 1/64, the basis is axis
// aligned with WCS X/Y (rotated 180 degrees about Y, i.e. X negated,
// when the extrusion points down, per the standard algorithm); otherwise the X axis is
// World-Z cross extrusion, normalized, and the Y axis completes the
// right-handed frame.
func ArbitraryAxis(extrusion Point3) (xAxis, yAxis Point3) {
	n := normalize(extrusion)
	if math.Abs(n.X) < arbitraryAxisEpsilon && math.Abs(n.Y) < arbitraryAxisEpsilon {
		if n.Z < 0 {
			return Point3{X: -1}, Point3{Y: 1}
		}
		return Point3{X: 1}, Point3{Y: 1}
	}
	worldZ := Point3{Z: 1}
	xAxis = normalize(cross(worldZ, n))
	yAxis = normalize(cross(n, xAxis))
	return xAxis, yAxis
}

// OCSToWCS projects a 2D OCS point (z implicitly 0 in the entity's own
// plane) into WCS given the entity's extrusion vector.
func OCSToWCS(p Point2, extrusion Point3) Point3 {
	xAxis, yAxis := ArbitraryAxis(extrusion)
	return Point3{
		X: p.X*xAxis.X + p.Y*yAxis.X,
		Y: p.X*xAxis.Y + p.Y*yAxis.Y,
		Z: p.X*xAxis.Z + p.Y*yAxis.Z,
	}
}

// Point2 is a minimal 2-component point, the OCS-plane counterpart of
// Point3.
type Point2 struct{ X, Y float64 }

func normalize(p Point3) Point3 {
	l := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	if l == 0 {
		return Point3{Z: 1}
	}
	return Point3{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

func cross(a, b Point3) Point3 {
	return Point3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
