package dwgsvg

import (
	"log/slog"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// renderContext bundles every piece of per-call state the source kept
// as file-scope globals (§5, §9): viewport bounds, options, a visited
// map, a running entity-index counter, and an optional logger. The
// writer is passed alongside it as a separate argument. It is
// constructed fresh per Render call and passed explicitly through the
// emitter call tree; it is never shared across goroutines.
type renderContext struct {
	model dwgmodel.Model
	opts  Options
	log   *slog.Logger

	xmin, ymin, xmax, ymax float64
	pageWidth, pageHeight  float64

	// visited is allocated per call but not read: the renderer never
	// recurses into an INSERT's block (it emits a <use>), and the
	// extents pass keeps its own visited map (computeModelSpaceExtents).
	visited map[int64]bool

	// nextIndex hands out the sequence number behind
	// id="dwg-object-<index>".
	nextIndex int
}

func newRenderContext(model dwgmodel.Model, opts Options, log *slog.Logger) *renderContext {
	return &renderContext{
		model:   model,
		opts:    opts,
		log:     log,
		visited: make(map[int64]bool),
	}
}

func (c *renderContext) takeIndex() int {
	i := c.nextIndex
	c.nextIndex++
	return i
}

// viewport returns the WCS->SVG affine for the current extents.
func (c *renderContext) viewport() svgxform.Matrix2D {
	return svgxform.Viewport(c.xmin, c.ymin, c.pageHeight)
}

func (c *renderContext) debugSkip(kind, reason string, index int) {
	if !c.opts.Verbose || c.log == nil {
		return
	}
	c.log.Debug("skipping entity", "entity", kind, "index", index, "reason", reason)
}
