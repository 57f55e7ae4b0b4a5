package dwgsvg

import (
	"io"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgpath"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// solidCornerOrder is the 1,2,4,3 corner order §4.4 calls out explicitly
// for SOLID/3DFACE polygon emission.
var solidCornerOrder = [4]int{0, 1, 3, 2}

func renderSolid(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Solid)
	if !visible(e) {
		c.debugSkip("SOLID", "invisible or layer off", e.Index())
		return nil
	}
	var p svgpath.Path
	for i, idx := range solidCornerOrder {
		corner := e.Corners[idx]
		if corner.IsNaN() {
			c.debugSkip("SOLID", "nan corner", e.Index())
			return nil
		}
		wcs := ocsToWCS(toXPoint2(corner), e.Extrusion)
		x, y := xf.Apply(wcs.X, wcs.Y)
		if i == 0 {
			p.Move(x, y)
		} else {
			p.Line(x, y)
		}
	}
	p.Stop(true)

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}

func renderFace3D(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Face3D)
	if !visible(e) {
		c.debugSkip("3DFACE", "invisible or layer off", e.Index())
		return nil
	}
	var p svgpath.Path
	for i, idx := range solidCornerOrder {
		corner := e.Corners[idx]
		if nan3(corner.X, corner.Y, corner.Z) {
			c.debugSkip("3DFACE", "nan corner", e.Index())
			return nil
		}
		x, y := xf.Apply(corner.X, corner.Y)
		edgeInvisible := e.InvisFlags&(1<<uint(i)) != 0
		switch {
		case i == 0:
			p.Move(x, y)
		case edgeInvisible:
			p.Move(x, y)
		default:
			p.Line(x, y)
		}
	}
	p.Stop(true)

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}

func renderPolyline2D(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Polyline2D)
	if !visible(e) {
		c.debugSkip("POLYLINE_2D", "invisible or layer off", e.Index())
		return nil
	}
	var p svgpath.Path
	started := false
	for _, ref := range e.VertexRefs {
		ent, ok := c.model.ResolveRef(ref)
		if !ok {
			continue
		}
		vx, ok := ent.(dwgmodel.Vertex2D)
		if !ok || vx.Flag&dwgmodel.VertexFlagSplineFrameControl != 0 {
			continue
		}
		if vx.Point.IsNaN() {
			continue
		}
		wcs := ocsToWCS(toXPoint2(vx.Point), e.Extrusion)
		x, y := xf.Apply(wcs.X, wcs.Y)
		if !started {
			p.Move(x, y)
			started = true
		} else {
			p.Line(x, y)
		}
	}
	p.Stop(e.Closed)

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}

// renderLWPolyline implements §4.4's LWPOLYLINE rule with the §3.1
// bulge supplement: a non-zero bulge on a segment emits an A command
// instead of the source's plain L.
func renderLWPolyline(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.LWPolyline)
	if !visible(e) {
		c.debugSkip("LWPOLYLINE", "invisible or layer off", e.Index())
		return nil
	}
	var p svgpath.Path
	pts := make([]svgxform.Point2, 0, len(e.Vertices))
	for _, v := range e.Vertices {
		if v.Point.IsNaN() {
			c.debugSkip("LWPOLYLINE", "nan vertex", e.Index())
			return nil
		}
		wcs := ocsToWCS(toXPoint2(v.Point), e.Extrusion)
		pts = append(pts, svgxform.Point2{X: wcs.X, Y: wcs.Y})
	}
	if len(pts) == 0 {
		id, _ := idAttr(c)
		style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
		return writeFragment(w, `<path id="%s" d="" style="%s" />`+"\n", id, style)
	}

	x0, y0 := xf.Apply(pts[0].X, pts[0].Y)
	p.Move(x0, y0)
	n := len(pts)
	segCount := n - 1
	if e.Closed {
		segCount = n
	}
	for i := 0; i < segCount; i++ {
		j := (i + 1) % n
		x1, y1 := xf.Apply(pts[i].X, pts[i].Y)
		x2, y2 := xf.Apply(pts[j].X, pts[j].Y)
		bulge := e.Vertices[i].Bulge
		if radius, large, sweep, ok := bulgeGeometry(svgxform.Point2{X: x1, Y: y1}, svgxform.Point2{X: x2, Y: y2}, bulge); ok {
			p.Arc(radius, radius, 0, large, sweep, x2, y2)
		} else {
			p.Line(x2, y2)
		}
	}
	if e.Closed {
		p.Stop(false) // the loop above already returned to the first vertex
	}

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}
