package dwgsvg

import (
	"io"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgpath"
	"github.com/go-dwg/dwgsvg/svgxform"
)

func renderXline(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Xline)
	return renderClippedLine(c, w, "XLINE", e, e.Point, e.Direction, false, xf)
}

func renderRay(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Ray)
	return renderClippedLine(c, w, "RAY", e, e.Point, e.Direction, true, xf)
}

// renderClippedLine implements §4.4's "RAY / XLINE" rule: slab-test clip
// the infinite/semi-infinite line against the model extents and emit
// only the visible segment.
func renderClippedLine(c *renderContext, w io.Writer, kind string, ent dwgmodel.Entity, point, direction dwgmodel.Point3, isRay bool, xf svgxform.Matrix2D) error {
	if !visible(ent) {
		c.debugSkip(kind, "invisible or layer off", ent.Index())
		return nil
	}
	if point.IsNaN() || direction.IsNaN() {
		c.debugSkip(kind, "nan point or direction", ent.Index())
		return nil
	}
	if direction.X == 0 && direction.Y == 0 {
		c.debugSkip(kind, "zero direction", ent.Index())
		return nil
	}

	box := clipBox{xmin: c.xmin, ymin: c.ymin, xmax: c.xmax, ymax: c.ymax}
	t0, t1, ok := slabClip(point.X, point.Y, direction.X, direction.Y, box, isRay)
	if !ok {
		c.debugSkip(kind, "outside model extents", ent.Index())
		return nil
	}

	x1, y1 := xf.Apply(point.X+direction.X*t0, point.Y+direction.Y*t0)
	x2, y2 := xf.Apply(point.X+direction.X*t1, point.Y+direction.Y*t1)

	var p svgpath.Path
	p.Move(x1, y1)
	p.Line(x2, y2)

	id, _ := idAttr(c)
	style := commonStyle(c, entityColor(c, ent), entityLineWeight(c, ent))
	return writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p.ToSVGPath(), style)
}
