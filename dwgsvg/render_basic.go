package dwgsvg

import (
	"io"
	"math"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgpath"
	"github.com/go-dwg/dwgsvg/svgxform"
)

func renderLine(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Line)
	if !visible(e) {
		c.debugSkip("LINE", "invisible or layer off", e.Index())
		return nil
	}
	if e.Start.IsNaN() || e.End.IsNaN() || e.Extrusion.IsNaN() {
		c.debugSkip("LINE", "nan coordinate or extrusion", e.Index())
		return nil
	}
	x1, y1 := transformedXY(xf, ocsToWCS(svgxform.Point2{X: e.Start.X, Y: e.Start.Y}, e.Extrusion))
	x2, y2 := transformedXY(xf, ocsToWCS(svgxform.Point2{X: e.End.X, Y: e.End.Y}, e.Extrusion))
	var p svgpath.Path
	p.Move(x1, y1)
	p.Line(x2, y2)

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}

func renderCircle(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Circle)
	if !visible(e) {
		c.debugSkip("CIRCLE", "invisible or layer off", e.Index())
		return nil
	}
	if e.Center.IsNaN() || e.Radius == 0 || e.Extrusion.IsNaN() {
		c.debugSkip("CIRCLE", "nan center, zero radius, or nan extrusion", e.Index())
		return nil
	}
	cx, cy := transformedXY(xf, ocsToWCS(svgxform.Point2{X: e.Center.X, Y: e.Center.Y}, e.Extrusion))

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<circle id="%s" cx="%f" cy="%f" r="%f" style="%s" />`+"\n",
		id, cx, cy, e.Radius, style)
}

func renderPoint(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Point)
	if !visible(e) {
		c.debugSkip("POINT", "invisible or layer off", e.Index())
		return nil
	}
	if e.Position.IsNaN() || e.Extrusion.IsNaN() {
		c.debugSkip("POINT", "nan position or extrusion", e.Index())
		return nil
	}
	cx, cy := transformedXY(xf, ocsToWCS(svgxform.Point2{X: e.Position.X, Y: e.Position.Y}, e.Extrusion))

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<circle id="%s" cx="%f" cy="%f" r="0.1" style="%s" />`+"\n", id, cx, cy, style)
}

func renderArc(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Arc)
	if !visible(e) {
		c.debugSkip("ARC", "invisible or layer off", e.Index())
		return nil
	}
	if e.Center.IsNaN() || e.Radius == 0 || e.Extrusion.IsNaN() ||
		math.IsNaN(e.StartAngle) || math.IsNaN(e.EndAngle) {
		c.debugSkip("ARC", "nan center, zero radius, nan extrusion, or nan angle", e.Index())
		return nil
	}
	center2 := svgxform.Point2{X: e.Center.X, Y: e.Center.Y}
	startOCS := arcPoint(center2, e.Radius, e.StartAngle)
	endOCS := arcPoint(center2, e.Radius, e.EndAngle)
	xs, ys := transformedXY(xf, ocsToWCS(startOCS, e.Extrusion))
	xe, ye := transformedXY(xf, ocsToWCS(endOCS, e.Extrusion))
	largeArc := arcLargeFlag(e.StartAngle, e.EndAngle)

	var p svgpath.Path
	p.Move(xs, ys)
	p.Arc(e.Radius, e.Radius, 0, largeArc, false, xe, ye)

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}
