package dwgsvg

import (
	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

func toXPoint3(p dwgmodel.Point3) svgxform.Point3 { return svgxform.Point3{X: p.X, Y: p.Y, Z: p.Z} }
func toXPoint2(p dwgmodel.Point2) svgxform.Point2 { return svgxform.Point2{X: p.X, Y: p.Y} }

// ocsToWCS projects an OCS-plane point given an entity's extrusion
// vector (§4.2). The point is taken at z = 0 in its OCS plane; no
// elevation is carried.
func ocsToWCS(p svgxform.Point2, extrusion dwgmodel.Point3) svgxform.Point3 {
	return svgxform.OCSToWCS(p, toXPoint3(extrusion))
}
