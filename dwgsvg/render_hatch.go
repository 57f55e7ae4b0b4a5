package dwgsvg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgpath"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// renderHatch implements §4.4's HATCH rule: solid-fill hatches combine
// every path into one filled <path>; non-solid hatches emit one
// stroked <path> per boundary path.
func renderHatch(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Hatch)
	if !visible(e) {
		c.debugSkip("HATCH", "invisible or layer off", e.Index())
		return nil
	}
	if len(e.Paths) == 0 {
		c.debugSkip("HATCH", "no paths", e.Index())
		return nil
	}

	if e.SolidFill {
		var combined strings.Builder
		for _, hp := range e.Paths {
			p := hatchPathData(c, hp, xf)
			if p == "" {
				continue
			}
			combined.WriteString(p)
			combined.WriteString(" ")
		}
		id, _ := idAttr(c)
		return writeFragment(w, `<path id="%s" d="%s" style="fill:%s;stroke:none;fill-rule:evenodd" />`+"\n",
			id, strings.TrimSpace(combined.String()), entityColor(c, e))
	}

	style := commonStyle(c, entityColor(c, e), entityLineWeight(c, e))
	for _, hp := range e.Paths {
		p := hatchPathData(c, hp, xf)
		if p == "" {
			continue
		}
		id, _ := idAttr(c)
		if err := writeFragment(w, `<path id="%s" d="%s" style="%s" />`+"\n", id, p, style); err != nil {
			return err
		}
	}
	return nil
}

// hatchPathData builds the "d" value for one boundary loop, dispatching
// on curve_type for segmented paths and handling the bulge-carrying
// polyline form directly (§4.4).
func hatchPathData(c *renderContext, hp dwgmodel.HatchPath, xf svgxform.Matrix2D) string {
	var p svgpath.Path
	if hp.IsPolyline {
		buildHatchPolyline(&p, hp, xf)
		return p.ToSVGPath()
	}
	buildHatchSegments(c, &p, hp, xf)
	return p.ToSVGPath()
}

func buildHatchPolyline(p *svgpath.Path, hp dwgmodel.HatchPath, xf svgxform.Matrix2D) {
	pts := hp.Polyline
	if len(pts) == 0 {
		return
	}
	x0, y0 := xf.Apply(pts[0].Point.X, pts[0].Point.Y)
	p.Move(x0, y0)
	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		x1, y1 := xf.Apply(pts[i].Point.X, pts[i].Point.Y)
		x2, y2 := xf.Apply(pts[j].Point.X, pts[j].Point.Y)
		if j == 0 {
			break
		}
		bulge := pts[i].Bulge
		if hp.HasBulges {
			if radius, large, sweep, ok := bulgeGeometry(svgxform.Point2{X: x1, Y: y1}, svgxform.Point2{X: x2, Y: y2}, bulge); ok {
				p.Arc(radius, radius, 0, large, sweep, x2, y2)
				continue
			}
		}
		p.Line(x2, y2)
	}
	// close the loop, using the final bulge-arc back to the start point
	// when present, otherwise a plain Z.
	last := pts[len(pts)-1]
	if hp.HasBulges && last.Bulge != 0 {
		xStart, yStart := xf.Apply(pts[0].Point.X, pts[0].Point.Y)
		xLast, yLast := xf.Apply(last.Point.X, last.Point.Y)
		if radius, large, sweep, ok := bulgeGeometry(svgxform.Point2{X: xLast, Y: yLast}, svgxform.Point2{X: xStart, Y: yStart}, last.Bulge); ok {
			p.Arc(radius, radius, 0, large, sweep, xStart, yStart)
			return
		}
	}
	p.Stop(true)
}

func buildHatchSegments(c *renderContext, p *svgpath.Path, hp dwgmodel.HatchPath, xf svgxform.Matrix2D) {
	started := false
	moveOrLine := func(x, y float64) {
		if !started {
			p.Move(x, y)
			started = true
		} else {
			p.Line(x, y)
		}
	}
	for _, seg := range hp.Segments {
		switch seg.CurveType {
		case dwgmodel.HatchCurveLine:
			x1, y1 := xf.Apply(seg.Start.X, seg.Start.Y)
			x2, y2 := xf.Apply(seg.End.X, seg.End.Y)
			moveOrLine(x1, y1)
			p.Line(x2, y2)

		case dwgmodel.HatchCurveArc:
			sx, sy := arcPoint(toXPoint2(seg.Center), seg.Radius, seg.StartAngle).X, arcPoint(toXPoint2(seg.Center), seg.Radius, seg.StartAngle).Y
			ex, ey := arcPoint(toXPoint2(seg.Center), seg.Radius, seg.EndAngle).X, arcPoint(toXPoint2(seg.Center), seg.Radius, seg.EndAngle).Y
			xs, ys := xf.Apply(sx, sy)
			xe, ye := xf.Apply(ex, ey)
			moveOrLine(xs, ys)
			largeArc := math.Abs(seg.EndAngle-seg.StartAngle) > math.Pi
			sweep := seg.IsCCW
			p.Arc(seg.Radius, seg.Radius, 0, largeArc, sweep, xe, ye)

		case dwgmodel.HatchCurveEllipticalArc:
			rx := math.Hypot(seg.Endpoint.X, seg.Endpoint.Y)
			ry := rx * seg.MinorMajorRatio
			rot := math.Atan2(seg.Endpoint.Y, seg.Endpoint.X) * 180 / math.Pi
			startP := ellipticalArcPoint(toXPoint2(seg.Center), rx, ry, rot, seg.StartAngle)
			endP := ellipticalArcPoint(toXPoint2(seg.Center), rx, ry, rot, seg.EndAngle)
			xs, ys := xf.Apply(startP.X, startP.Y)
			xe, ye := xf.Apply(endP.X, endP.Y)
			moveOrLine(xs, ys)
			largeArc := math.Abs(seg.EndAngle-seg.StartAngle) > math.Pi
			p.Arc(rx, ry, rot, largeArc, seg.IsCCW, xe, ye)

		case dwgmodel.HatchCurveSpline:
			pts := seg.ControlPoints
			if len(pts) == 0 {
				pts = seg.FitPoints
			}
			for _, pt := range pts {
				x, y := xf.Apply(pt.X, pt.Y)
				moveOrLine(x, y)
			}

		default:
			if c != nil {
				c.debugSkip("HATCH", fmt.Sprintf("unsupported curve_type %d", seg.CurveType), -1)
			}
		}
	}
	p.Stop(true)
}

func ellipticalArcPoint(center svgxform.Point2, rx, ry, rotationDeg, angle float64) svgxform.Point2 {
	cos, sin := math.Cos(rotationDeg*math.Pi/180), math.Sin(rotationDeg*math.Pi/180)
	lx, ly := rx*math.Cos(angle), ry*math.Sin(angle)
	return svgxform.Point2{
		X: center.X + lx*cos - ly*sin,
		Y: center.Y + lx*sin + ly*cos,
	}
}
