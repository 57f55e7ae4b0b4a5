package dwgsvg

import (
	"io"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// renderInsert implements §4.4's INSERT rule: place a <use> referencing
// the block's <defs> symbol, carrying the placement transform computed
// by insertTransform. A missing block target degrades to a comment
// (§7) rather than aborting the document.
func renderInsert(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	ins := ent.(dwgmodel.Insert)
	if !visible(ins) {
		c.debugSkip("INSERT", "invisible or layer off", ins.Index())
		return nil
	}
	if ins.Block == nil {
		c.debugSkip("INSERT", "missing block", ins.Index())
		return writeFragment(w, "<!-- WRONG INSERT(missing block) -->\n")
	}

	combined := insertTransform(ins).Mult(xf)

	id, _ := idAttr(c)
	return writeFragment(w, `<use id="%s" xlink:href="#symbol-%d" transform="%s" />`+"\n",
		id, ins.Block.AbsoluteRef, combined.String())
}
