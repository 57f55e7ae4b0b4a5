package dwgsvg

import (
	"fmt"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgdraw"
)

// render implements §4.7's 5-step process: compute extents, emit the
// SVG prologue, stream the chosen space's entities, drain every block
// definition in the block-control table into <defs>, close the
// document.
func render(model dwgmodel.Model, opts Options, c *renderContext, sink svgdraw.Sink) error {
	xmin, ymin, xmax, ymax := computeModelSpaceExtents(model, opts.ModelSpaceOnly)
	width, height := xmax-xmin, ymax-ymin
	c.xmin, c.ymin, c.xmax, c.ymax = xmin, ymin, xmax, ymax
	c.pageWidth, c.pageHeight = width, height

	if err := svgdraw.Printf(sink,
		`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`+"\n"+
			`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" `+
			`version="1.1" baseProfile="basic" width="100%%" height="100%%" `+
			`viewBox="0 0 %f %f" data-gen-vers="%s">`+"\n",
		width, height, opts.dataGenVersion()); err != nil {
		return err
	}

	space, ok := chooseSpace(model, opts)
	if ok {
		if err := renderSpace(c, sink, space); err != nil {
			return err
		}
	}

	if err := drainSymbols(c, sink); err != nil {
		return err
	}

	return svgdraw.Printf(sink, "</svg>\n")
}

// chooseSpace implements the same paper-space-then-model-space fallback
// order as computeModelSpaceExtents (§4.5/§4.7): paper space wins unless
// --mspace was requested or it turns out to own zero entities, in which
// case model space is used instead, so the rendered content matches the
// space the viewport was sized against.
func chooseSpace(model dwgmodel.Model, opts Options) (*dwgmodel.BlockHeader, bool) {
	if !opts.ModelSpaceOnly {
		if paper, ok := model.PaperSpace(); ok && len(paper.Entities()) > 0 {
			return paper, true
		}
	}
	if ms, ok := model.ModelSpace(); ok {
		return ms, true
	}
	return nil, false
}

func validateModel(model dwgmodel.Model) error {
	if model == nil {
		return fmt.Errorf("%w: nil model", ErrInvalidDWG)
	}
	if err := model.ResolveObjectRefs(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDWG, err)
	}
	return nil
}
