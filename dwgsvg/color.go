package dwgsvg

import (
	"fmt"
	"image/color"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

// namedACIColors gives the canonical SVG color-keyword form for ACI
// indices 1-7 (§4.1).
var namedACIColors = map[int]string{
	1: "red", 2: "yellow", 3: "green", 4: "cyan", 5: "blue", 6: "magenta", 7: "white",
}

var namedACIRGB = map[int]color.RGBA{
	1: {255, 0, 0, 255}, 2: {255, 255, 0, 255}, 3: {0, 255, 0, 255},
	4: {0, 255, 255, 255}, 5: {0, 0, 255, 255}, 6: {255, 0, 255, 255},
	7: {255, 255, 255, 255},
}

// resolveColor implements §4.1's ordered rule set. Every branch builds a
// concrete color.RGBA first; the SVG-literal string is chosen last, so
// "what color is this" stays independent of "how is it written".
func resolveColor(model dwgmodel.Model, spec dwgmodel.ColorSpec, layer *dwgmodel.Layer) string {
	rgba, name := resolveRGBA(model, spec, layer, 0)
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// resolveRGBA returns either a named color (name != "") or an RGBA
// value. depth guards ByLayer indirection against a layer that
// (incorrectly) points back at ByLayer.
func resolveRGBA(model dwgmodel.Model, spec dwgmodel.ColorSpec, layer *dwgmodel.Layer, depth int) (color.RGBA, string) {
	const maxByLayerDepth = 4

	switch {
	case spec.Index == 256: // ByLayer
		if layer != nil && depth < maxByLayerDepth {
			return resolveRGBA(model, layer.Color, nil, depth+1)
		}
		// No resolvable layer: fall back to the entity's own rgb field,
		// which may itself carry a 0xc3-encoded ACI index rather than a
		// true 24-bit color, before giving up to black.
		if (spec.RGB>>24)&0xff == 0xc3 {
			aci := int(spec.RGB & 0xff)
			return resolveRGBA(model, dwgmodel.ColorSpec{Index: aci}, nil, depth+1)
		}
		return color.RGBA{}, "black"

	case spec.Index >= 1 && spec.Index <= 7:
		return namedACIRGB[spec.Index], namedACIColors[spec.Index]

	case spec.Index >= 8 && spec.Index <= 255:
		pal := model.RGBPalette()
		c := pal[spec.Index]
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, ""

	case spec.Flag&dwgmodel.ColorFlagRGB != 0 && spec.Flag&dwgmodel.ColorFlagACI24 == 0:
		return rgbaFromLow24(spec.RGB), ""

	default: // ByBlock / default / index 0
		return color.RGBA{}, "black"
	}
}

func rgbaFromLow24(rgb uint32) color.RGBA {
	return color.RGBA{
		R: byte(rgb >> 16),
		G: byte(rgb >> 8),
		B: byte(rgb),
		A: 255,
	}
}
