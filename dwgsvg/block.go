package dwgsvg

import (
	"io"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// renderSpace walks a paper- or model-space block's owned entities under
// the viewport transform, the top-level entry point for §4.6's block
// emitter when the block isn't a symbol definition.
func renderSpace(c *renderContext, w io.Writer, block *dwgmodel.BlockHeader) error {
	if block == nil {
		return nil
	}
	xf := c.viewport()
	for _, e := range block.Entities() {
		if err := renderEntity(c, w, e, xf); err != nil {
			return err
		}
	}
	return nil
}

// drainSymbols writes every block in the model's block-control table
// under <defs>, per §4.7 step 4 ("emit <defs> containing every block
// definition in the block control table") — not only the ones actually
// referenced by an INSERT. Paper/model space headers are block entries
// too but aren't symbol definitions, so eligibleSpace filters them out.
// Each surviving block is wrapped in a <g id="symbol-<absolute_ref>">
// per §4.6/§3 invariant (e): interior entities use raw coordinates
// (svgxform.Identity), never the viewport transform, since the
// placement matrix at the <use> site carries that.
func drainSymbols(c *renderContext, w io.Writer) error {
	var symbols []*dwgmodel.BlockHeader
	for _, b := range c.model.BlockControl() {
		if !eligibleSpace(b) {
			continue
		}
		symbols = append(symbols, b)
	}
	if len(symbols) == 0 {
		return nil
	}
	if err := writeFragment(w, "<defs>\n"); err != nil {
		return err
	}
	for _, block := range symbols {
		if err := emitSymbol(c, w, block); err != nil {
			return err
		}
	}
	return writeFragment(w, "</defs>\n")
}

// emitSymbol writes a block definition's name as an escaped comment
// (§4.6) followed by its <g id="symbol-<absolute_ref>"> content.
func emitSymbol(c *renderContext, w io.Writer, block *dwgmodel.BlockHeader) error {
	if err := writeFragment(w, "<!-- BLOCK %s -->\n", escapeBlockName(block.Name)); err != nil {
		return err
	}
	if err := writeFragment(w, `<g id="symbol-%d">`+"\n", block.AbsoluteRef); err != nil {
		return err
	}
	for _, e := range block.Entities() {
		if err := renderEntity(c, w, e, svgxform.Identity); err != nil {
			return err
		}
	}
	return writeFragment(w, "</g>\n")
}

// eligibleSpace reports whether a block header is an ordinary block
// definition rather than a paper/model space container (§4.6) — space
// headers appear in the block-control table too but are emitted via
// renderSpace, not as <defs> symbols.
func eligibleSpace(block *dwgmodel.BlockHeader) bool {
	return block != nil && !isModelOrPaperSpace(block.Name)
}
