package dwgsvg

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

func textAnchor(horiz int) string {
	switch horiz {
	case 1, 4:
		return "middle"
	case 2:
		return "end"
	default:
		return "start"
	}
}

func dominantBaseline(vert int) string {
	switch vert {
	case 1:
		return "text-after-edge"
	case 2:
		return "central"
	case 3:
		return "text-before-edge"
	default:
		return "auto"
	}
}

// transcodeText decodes a TEXT/ATTDEF string per §6's UTF-16 /
// single-byte-codepage rule and HTML-escapes the result.
func transcodeText(c *renderContext, raw []byte, isUTF16 bool, codepage string) string {
	tc := c.model.Transcoder()
	var decoded string
	var err error
	if isUTF16 {
		decoded, err = tc.DecodeUTF16(raw)
	} else {
		decoded, err = tc.DecodeCodepage(raw, codepage)
	}
	if err != nil {
		decoded = string(raw)
	}
	return html.EscapeString(decoded)
}

func renderTextLike(c *renderContext, w io.Writer, t dwgmodel.Text, applyRotation bool, xf svgxform.Matrix2D) error {
	if !visible(t) {
		c.debugSkip("TEXT", "invisible or layer off", t.Index())
		return nil
	}
	if t.InsertionPoint.IsNaN() {
		c.debugSkip("TEXT", "nan insertion point", t.Index())
		return nil
	}

	anchor := t.InsertionPoint
	if t.HasAlignment && (t.Align.Horiz != 0 || t.Align.Vert != 0) {
		anchor = t.AlignmentPoint
	}
	anchorWCS := ocsToWCS(svgxform.Point2{X: anchor.X, Y: anchor.Y}, t.Extrusion)
	x, y := xf.Apply(anchorWCS.X, anchorWCS.Y)

	widthFactor := t.WidthFactor
	if widthFactor == 0 && t.Style != nil {
		widthFactor = t.Style.WidthFactor
	}
	if widthFactor == 0 {
		widthFactor = 1.0
	}

	fontFile := ""
	if t.Style != nil {
		fontFile = t.Style.FontFile
	}
	family, capHeight := resolveFont(fontFile, c.opts.DefaultFont)
	size := fontSize(t.Height, capHeight)

	var transforms []string
	rotation := 0.0
	if applyRotation {
		rotation = t.Rotation
	}
	if rotation != 0 {
		degrees := svgxform.NegateAngle(rotation)
		transforms = append(transforms, fmt.Sprintf("rotate(%f %f %f)", degrees, x, y))
	}
	if widthFactor != 1 {
		transforms = append(transforms, fmt.Sprintf("scale(%f,1)", widthFactor))
		x = x / widthFactor
	}

	text := transcodeText(c, t.RawText, t.IsUTF16, t.Codepage)

	id, _ := idAttr(c)
	transformAttr := ""
	if len(transforms) > 0 {
		transformAttr = ` transform="` + strings.Join(transforms, " ") + `"`
	}
	return writeFragment(w, `<text id="%s" x="%f" y="%f" font-family="%s" font-size="%f" text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		id, x, y, family, size, textAnchor(t.Align.Horiz), dominantBaseline(t.Align.Vert), transformAttr, text)
}

func renderText(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	return renderTextLike(c, w, ent.(dwgmodel.Text), false, xf)
}

func renderAttdef(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	return renderTextLike(c, w, ent.(dwgmodel.Attdef).Text, true, xf)
}
