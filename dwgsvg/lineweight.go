package dwgsvg

import (
	"math"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

// resolveLineweight implements §4.4's "Line weight" rule: ByLayer falls
// back to the layer, non-positive codes become 0.1px, otherwise the mm
// value (floored at 0.1) is used directly as the px width.
func resolveLineweight(model dwgmodel.Model, code dwgmodel.Lineweight, layer *dwgmodel.Layer) float64 {
	if code == dwgmodel.LineweightByLayer {
		if layer == nil {
			return 0.1
		}
		return resolveLineweight(model, layer.LineWt, nil)
	}
	if code <= 0 {
		return 0.1
	}
	mm := model.LineweightMM(code)
	return math.Max(mm, 0.1)
}
