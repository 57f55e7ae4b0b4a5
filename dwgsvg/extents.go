package dwgsvg

import (
	"math"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// extentsAccumulator mirrors §4.5's Extents{xmin,ymin,xmax,ymax,initialized}.
type extentsAccumulator struct {
	xmin, ymin, xmax, ymax float64
	initialized            bool
}

func (a *extentsAccumulator) add(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	if !a.initialized {
		a.xmin, a.xmax, a.ymin, a.ymax = x, x, y, y
		a.initialized = true
		return
	}
	a.xmin = math.Min(a.xmin, x)
	a.xmax = math.Max(a.xmax, x)
	a.ymin = math.Min(a.ymin, y)
	a.ymax = math.Max(a.ymax, y)
}

func (a *extentsAccumulator) addSquare(cx, cy, half float64) {
	a.add(cx-half, cy-half)
	a.add(cx+half, cy+half)
}

// collectExtents runs the single-pass visitor of §4.5 over a block's
// owned entities, recursing into INSERT targets with the same
// visited-set discipline the renderer uses (§4.4/§9).
func collectExtents(model dwgmodel.Model, block *dwgmodel.BlockHeader, acc *extentsAccumulator, visited map[int64]bool) {
	if block == nil {
		return
	}
	for _, e := range block.Entities() {
		collectEntityExtents(model, e, acc, visited)
	}
}

func collectEntityExtents(model dwgmodel.Model, e dwgmodel.Entity, acc *extentsAccumulator, visited map[int64]bool) {
	switch v := e.(type) {
	case dwgmodel.Line:
		if v.Start.IsNaN() || v.End.IsNaN() {
			return
		}
		acc.add(v.Start.X, v.Start.Y)
		acc.add(v.End.X, v.End.Y)
	case dwgmodel.Point:
		if v.Position.IsNaN() {
			return
		}
		acc.add(v.Position.X, v.Position.Y)
	case dwgmodel.Solid:
		for _, p := range v.Corners {
			wcs := ocsToWCS(toXPoint2(p), v.Extrusion)
			acc.add(wcs.X, wcs.Y)
		}
	case dwgmodel.Face3D:
		for _, p := range v.Corners {
			acc.add(p.X, p.Y)
		}
	case dwgmodel.Polyline2D:
		for _, ref := range v.VertexRefs {
			ent, ok := model.ResolveRef(ref)
			if !ok {
				continue
			}
			vx, ok := ent.(dwgmodel.Vertex2D)
			if !ok || vx.Flag&dwgmodel.VertexFlagSplineFrameControl != 0 {
				continue
			}
			wcs := ocsToWCS(toXPoint2(vx.Point), v.Extrusion)
			acc.add(wcs.X, wcs.Y)
		}
	case dwgmodel.LWPolyline:
		for _, vtx := range v.Vertices {
			wcs := ocsToWCS(toXPoint2(vtx.Point), v.Extrusion)
			acc.add(wcs.X, wcs.Y)
		}
	case dwgmodel.Circle:
		if v.Center.IsNaN() || v.Radius == 0 {
			return
		}
		acc.addSquare(v.Center.X, v.Center.Y, v.Radius)
	case dwgmodel.Arc:
		if v.Center.IsNaN() || v.Radius == 0 {
			return
		}
		acc.addSquare(v.Center.X, v.Center.Y, v.Radius)
	case dwgmodel.Ellipse:
		if v.Center.IsNaN() {
			return
		}
		rx := v.SMAxis.Length()
		ry := rx * v.AxisRatio
		half := math.Max(rx, ry)
		acc.addSquare(v.Center.X, v.Center.Y, half)
	case dwgmodel.Text:
		acc.add(v.InsertionPoint.X, v.InsertionPoint.Y)
		acc.add(v.InsertionPoint.X+5*v.Height, v.InsertionPoint.Y+v.Height)
	case dwgmodel.Attdef:
		acc.add(v.InsertionPoint.X, v.InsertionPoint.Y)
		acc.add(v.InsertionPoint.X+5*v.Height, v.InsertionPoint.Y+v.Height)
	case dwgmodel.Hatch:
		collectHatchExtents(v, acc)
	case dwgmodel.Image:
		w, h := v.PixelW, v.PixelH
		acc.add(v.Pt0.X, v.Pt0.Y)
		acc.add(v.Pt0.X+v.UVec.X*w, v.Pt0.Y+v.UVec.Y*w)
		acc.add(v.Pt0.X+v.UVec.X*w+v.VVec.X*h, v.Pt0.Y+v.UVec.Y*w+v.VVec.Y*h)
		acc.add(v.Pt0.X+v.VVec.X*h, v.Pt0.Y+v.VVec.Y*h)
	case dwgmodel.Insert:
		collectInsertExtents(model, v, acc, visited)
	case dwgmodel.Xline:
		// unbounded; contributes nothing until clipped against a box
		// that itself depends on these extents, matching the source's
		// treatment of XLINE/RAY as non-contributing to the bbox pass.
	case dwgmodel.Ray:
	}
}

func collectHatchExtents(h dwgmodel.Hatch, acc *extentsAccumulator) {
	for _, path := range h.Paths {
		if path.IsPolyline {
			for _, v := range path.Polyline {
				acc.add(v.Point.X, v.Point.Y)
			}
			continue
		}
		for _, seg := range path.Segments {
			switch seg.CurveType {
			case dwgmodel.HatchCurveLine:
				acc.add(seg.Start.X, seg.Start.Y)
				acc.add(seg.End.X, seg.End.Y)
			case dwgmodel.HatchCurveArc:
				acc.addSquare(seg.Center.X, seg.Center.Y, seg.Radius)
			case dwgmodel.HatchCurveEllipticalArc:
				rx := math.Hypot(seg.Endpoint.X, seg.Endpoint.Y)
				ry := rx * seg.MinorMajorRatio
				acc.addSquare(seg.Center.X, seg.Center.Y, math.Max(rx, ry))
			case dwgmodel.HatchCurveSpline:
				pts := seg.ControlPoints
				if len(pts) == 0 {
					pts = seg.FitPoints
				}
				for _, p := range pts {
					acc.add(p.X, p.Y)
				}
			}
		}
	}
}

func collectInsertExtents(model dwgmodel.Model, ins dwgmodel.Insert, acc *extentsAccumulator, visited map[int64]bool) {
	if ins.Block == nil {
		return
	}
	ref := ins.Block.AbsoluteRef
	if visited[ref] {
		return
	}
	visited[ref] = true
	defer delete(visited, ref)

	var blockAcc extentsAccumulator
	collectExtents(model, ins.Block, &blockAcc, visited)
	if !blockAcc.initialized {
		return
	}

	xf := insertTransform(ins)
	corners := [4][2]float64{
		{blockAcc.xmin, blockAcc.ymin}, {blockAcc.xmax, blockAcc.ymin},
		{blockAcc.xmax, blockAcc.ymax}, {blockAcc.xmin, blockAcc.ymax},
	}
	for _, corner := range corners {
		x, y := xf.Apply(corner[0], corner[1])
		acc.add(x, y)
	}
}

// insertTransform builds the WCS-space placement affine S*(p-B) rotated
// by R, plus the OCS-projected insertion point I, used identically by
// the extents pass and the renderer (§4.4's INSERT derivation).
func insertTransform(ins dwgmodel.Insert) svgxform.Matrix2D {
	b := ins.Block.BasePoint
	i := ocsToWCS(svgxform.Point2{X: ins.InsertionPoint.X, Y: ins.InsertionPoint.Y}, ins.Extrusion)
	return svgxform.Identity.
		Translate(-b.X, -b.Y).
		Scale(ins.Scale.X, ins.Scale.Y).
		Rotate(ins.Rotation).
		Translate(i.X, i.Y)
}

// computeModelSpaceExtents runs the collector over paper space (unless
// mspaceOnly) then model space, falling back to the model's stored
// extents and finally to a default 100x100 box (§4.5, §3 invariant f).
func computeModelSpaceExtents(model dwgmodel.Model, mspaceOnly bool) (xmin, ymin, xmax, ymax float64) {
	var acc extentsAccumulator
	visited := make(map[int64]bool)

	if !mspaceOnly {
		if paper, ok := model.PaperSpace(); ok {
			collectExtents(model, paper, &acc, visited)
		}
	}
	if !acc.initialized {
		if ms, ok := model.ModelSpace(); ok {
			collectExtents(model, ms, &acc, visited)
		}
	}

	if !acc.initialized {
		if sx, sy, sX, sY, ok := model.StoredExtents(); ok {
			acc.xmin, acc.ymin, acc.xmax, acc.ymax, acc.initialized = sx, sy, sX, sY, true
		}
	}

	width, height := acc.xmax-acc.xmin, acc.ymax-acc.ymin
	if !acc.initialized || math.IsNaN(width) || math.IsNaN(height) || width <= 0 || height <= 0 {
		return 0, 0, 100, 100
	}
	return acc.xmin, acc.ymin, acc.xmax, acc.ymax
}
