package dwgsvg

import (
	"math"

	"github.com/go-dwg/dwgsvg/svgxform"
)

// arcPoint returns the OCS-plane point at angle (radians) on a circle
// of the given center/radius.
func arcPoint(center svgxform.Point2, radius, angle float64) svgxform.Point2 {
	return svgxform.Point2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// arcLargeFlag implements the standalone-ARC large-arc rule (§4.4):
// large_arc = 1 iff end - start >= pi. Sweep is always 0 for a
// standalone ARC (§9 "Arc sweep convention" — DWG arcs are always
// stored CCW start-to-end, which the viewport Y-flip turns into a
// visually clockwise sweep).
func arcLargeFlag(startAngle, endAngle float64) bool {
	return endAngle-startAngle >= math.Pi
}

// bulgeGeometry implements §4.4's "Bulge -> arc" conversion. ok is
// false when bulge is zero (segment should be a plain line).
func bulgeGeometry(p1, p2 svgxform.Point2, bulge float64) (radius float64, largeArc, sweep, ok bool) {
	if bulge == 0 {
		return 0, false, false, false
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	chord := math.Hypot(dx, dy)
	sagitta := math.Abs(bulge) * chord / 2
	if sagitta == 0 {
		return 0, false, false, false
	}
	radius = (chord*chord/4 + sagitta*sagitta) / (2 * sagitta)
	largeArc = math.Abs(bulge) > 1
	sweep = bulge > 0
	return radius, largeArc, sweep, true
}

// ellipseIsFullTurn reports whether the start/end angle pair is exactly
// (0, 2π), in which case the full <ellipse> form (§4.4) is still used;
// any other pair, including one that spans 2π from a non-zero start,
// is emitted as a bounded arc path (the
// SPEC_FULL.md §4.4/§9 resolution of the ELLIPSE-always-full gap).
func ellipseIsFullTurn(startAngle, endAngle float64) bool {
	const fullTurnEpsilon = 1e-9
	return startAngle == 0 && math.Abs(endAngle-2*math.Pi) < fullTurnEpsilon
}

// ellipseArcLargeSweep applies HATCH's circular-arc large-arc rule
// (|end - start| > π, unlike arcLargeFlag's end - start >= π) to an
// ellipse's own angular parameterization; sweep is always false, as
// for a standalone ARC.
func ellipseArcLargeSweep(startAngle, endAngle float64) (largeArc, sweep bool) {
	diff := endAngle - startAngle
	return math.Abs(diff) > math.Pi, false
}
