package dwgsvg

import (
	"io"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// renderImage implements §4.4's IMAGE rule: the per-pixel U/V basis
// vectors place a PixelW x PixelH <image> via a matrix() transform, with
// the upper-left corner derived from the lower-left reference point.
func renderImage(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	e := ent.(dwgmodel.Image)
	if !visible(e) {
		c.debugSkip("IMAGE", "invisible or layer off", e.Index())
		return nil
	}
	if e.Def == nil || e.Def.FilePath == "" {
		c.debugSkip("IMAGE", "missing image definition", e.Index())
		return nil
	}

	upperLeftX := e.Pt0.X + e.VVec.X*e.PixelH
	upperLeftY := e.Pt0.Y + e.VVec.Y*e.PixelH
	originX, originY := xf.Apply(upperLeftX, upperLeftY)

	m := svgxform.Matrix2D{
		A: e.UVec.X, B: -e.UVec.Y,
		C: -e.VVec.X, D: e.VVec.Y,
		E: originX, F: originY,
	}

	id, _ := idAttr(c)
	return writeFragment(w,
		`<image id="%s" width="%f" height="%f" preserveAspectRatio="none" transform="%s" xlink:href="%s" />`+"\n",
		id, e.PixelW, e.PixelH, m.String(), e.Def.FilePath)
}
