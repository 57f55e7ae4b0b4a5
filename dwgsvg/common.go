package dwgsvg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

// commonStyle builds the shared style="fill:none;stroke:...;stroke-width:...px"
// attribute value every stroked entity uses (§4.4).
func commonStyle(c *renderContext, color string, lineWeight float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2fpx", color, lineWeight)
}

// entityColor resolves an entity's color against its layer.
func entityColor(c *renderContext, e dwgmodel.Entity) string {
	return resolveColor(c.model, e.EntityColor(), e.EntityLayer())
}

// entityLineWeight resolves an entity's stroke width. Entities that
// don't carry their own lineweight field inherit ByLayer.
func entityLineWeight(c *renderContext, e dwgmodel.Entity) float64 {
	layer := e.EntityLayer()
	return resolveLineweight(c.model, dwgmodel.LineweightByLayer, layer)
}

// visible implements the §3 invariants (a)/(b) shared by every emitter:
// skip if the layer is off/frozen, or the entity's invisible bit is set.
func visible(e dwgmodel.Entity) bool {
	if e.Invisible() {
		return false
	}
	if layer := e.EntityLayer(); layer != nil && !layer.Visible() {
		return false
	}
	return true
}

// escapeBlockName replaces "--" with "__" so a block name can appear
// safely inside an SVG comment (§4.6).
func escapeBlockName(name string) string {
	return strings.ReplaceAll(name, "--", "__")
}

func isModelOrPaperSpace(name string) bool {
	lower := strings.ToLower(name)
	return lower == "*model_space" || strings.HasPrefix(lower, "*paper_space")
}

// idAttr formats the id="dwg-object-<index>" attribute common to every
// rendered fragment (§3 testable property, §4.4).
func idAttr(c *renderContext) (string, int) {
	idx := c.takeIndex()
	return fmt.Sprintf("dwg-object-%d", idx), idx
}

func writeFragment(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// transformedXY applies xf to an OCS point already projected to WCS via
// svgxform.OCSToWCS, returning SVG-space coordinates.
func transformedXY(xf svgxform.Matrix2D, p svgxform.Point3) (float64, float64) {
	return xf.Apply(p.X, p.Y)
}

func nan2(x, y float64) bool { return math.IsNaN(x) || math.IsNaN(y) }
func nan3(x, y, z float64) bool { return math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) }
