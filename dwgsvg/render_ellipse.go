package dwgsvg

import (
	"io"
	"math"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgpath"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// renderEllipse implements §4.4's ELLIPSE rule with the §9 gap closed:
// a sub-arc (start/end angle narrower than a full turn) emits a bounded
// <path> with an A command instead of always falling back to a full
// <ellipse>.
func renderEllipse(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Ellipse)
	if !visible(e) {
		c.debugSkip("ELLIPSE", "invisible or layer off", e.Index())
		return nil
	}
	if e.Center.IsNaN() || e.SMAxis.IsNaN() {
		c.debugSkip("ELLIPSE", "nan center or axis", e.Index())
		return nil
	}
	rx := e.SMAxis.Length()
	if rx == 0 {
		c.debugSkip("ELLIPSE", "zero major axis", e.Index())
		return nil
	}
	ry := rx * e.AxisRatio
	rotationDeg := math.Atan2(e.SMAxis.Y, e.SMAxis.X) * 180 / math.Pi

	cx, cy := xf.Apply(e.Center.X, e.Center.Y)
	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))

	if ellipseIsFullTurn(e.StartAngle, e.EndAngle) {
		return writeFragment(w,
			`<ellipse id="%s" cx="%f" cy="%f" rx="%f" ry="%f" transform="rotate(%f %f %f)" style="%s" />`+"\n",
			id, cx, cy, rx, ry, rotationDeg, cx, cy, style)
	}

	cos, sin := math.Cos(rotationDeg*math.Pi/180), math.Sin(rotationDeg*math.Pi/180)
	ellipsePoint := func(angle float64) (float64, float64) {
		lx, ly := rx*math.Cos(angle), ry*math.Sin(angle)
		return e.Center.X + lx*cos - ly*sin, e.Center.Y + lx*sin + ly*cos
	}
	sx, sy := ellipsePoint(e.StartAngle)
	ex, ey := ellipsePoint(e.EndAngle)
	xs, ys := xf.Apply(sx, sy)
	xe, ye := xf.Apply(ex, ey)
	largeArc, sweep := ellipseArcLargeSweep(e.StartAngle, e.EndAngle)

	var p svgpath.Path
	p.Move(xs, ys)
	p.Arc(rx, ry, rotationDeg, largeArc, sweep, xe, ye)

	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}
