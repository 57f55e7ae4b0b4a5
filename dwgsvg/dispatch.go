package dwgsvg

import (
	"io"

	"github.com/go-dwg/dwgsvg/dwgmodel"
	"github.com/go-dwg/dwgsvg/svgxform"
)

type renderFunc func(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error

// dispatchTable maps each EntityKind to its renderer, replacing the
// source's tag-keyed switch with a map built once per process (§9). Go
// has no compiler-enforced exhaustiveness over EntityKind; an entity
// kind with no entry here is silently unrenderable, which
// renderEntity's ok-check turns into a logged skip rather than a panic.
var dispatchTable = map[dwgmodel.EntityKind]renderFunc{
	dwgmodel.KindLine:       renderLine,
	dwgmodel.KindCircle:     renderCircle,
	dwgmodel.KindArc:        renderArc,
	dwgmodel.KindEllipse:    renderEllipse,
	dwgmodel.KindPoint:      renderPoint,
	dwgmodel.KindSolid:      renderSolid,
	dwgmodel.Kind3DFace:     renderFace3D,
	dwgmodel.KindPolyline2D: renderPolyline2D,
	dwgmodel.KindLWPolyline: renderLWPolyline,
	dwgmodel.KindHatch:      renderHatch,
	dwgmodel.KindText:       renderText,
	dwgmodel.KindAttdef:     renderAttdef,
	dwgmodel.KindInsert:     renderInsert,
	dwgmodel.KindImage:      renderImage,
	dwgmodel.KindXline:      renderXline,
	dwgmodel.KindRay:        renderRay,
}

// renderEntity dispatches a single entity through dispatchTable.
func renderEntity(c *renderContext, w io.Writer, ent dwgmodel.Entity, xf svgxform.Matrix2D) error {
	fn, ok := dispatchTable[ent.Kind()]
	if !ok {
		c.debugSkip("UNKNOWN", "no renderer registered for entity kind", ent.Index())
		return nil
	}
	return fn(c, w, ent, xf)
}
