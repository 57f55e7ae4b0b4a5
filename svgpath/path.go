// Package svgpath implements an abstract representation of SVG path
// data, built incrementally by the renderer and flattened to a literal
// "d" attribute string. Coordinates are float64, not the fixed-point
// grid the wider vector-graphics lineage this package descends from
// uses for rasterization — this package only ever writes SVG text, and
// the spec's literal six-decimal output requirements are not
// representable on a 1/64 fixed-point grid.
package svgpath

import (
	"fmt"
	"strings"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathArcTo
	pathClose
)

// Operation groups the different SVG path commands this renderer
// emits. Unlike the wider lineage's Operation set (which also carries
// quadratic/cubic Bezier commands for flattening arbitrary curves),
// this set adds ArcTo and drops Bezier commands entirely: DWG arcs,
// circles, ellipses, and bulges all have a natural literal SVG "A"
// representation, and nothing in this pipeline ever needs to flatten a
// curve into Beziers.
type Operation interface {
	command() pathCommand
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct{ X, Y float64 }

// LineTo draws a straight segment to (X, Y).
type LineTo struct{ X, Y float64 }

// ArcTo draws an elliptical arc to (X, Y) with radii (RX, RY), x-axis
// rotation RotationDeg, and the two SVG arc flags.
type ArcTo struct {
	RX, RY      float64
	RotationDeg float64
	LargeArc    bool
	Sweep       bool
	X, Y        float64
}

// Close appends the "Z" command.
type Close struct{}

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }
func (ArcTo) command() pathCommand  { return pathArcTo }
func (Close) command() pathCommand  { return pathClose }

// Path describes a sequence of SVG path operations. Higher-level
// entity emitters build one, then flatten it once via ToSVGPath.
type Path []Operation

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ToSVGPath returns the literal "d" attribute value for p, using the
// "LETTER x,y" spacing the testable end-to-end scenarios require.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M %f,%f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L %f,%f", op.X, op.Y)
		case ArcTo:
			chunks[i] = fmt.Sprintf("A %f,%f %f %d,%d %f,%f",
				op.RX, op.RY, op.RotationDeg, flag(op.LargeArc), flag(op.Sweep), op.X, op.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice.
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Move starts a new subpath at (x, y).
func (p *Path) Move(x, y float64) {
	*p = append(*p, MoveTo{x, y})
}

// Line adds a straight segment to (x, y).
func (p *Path) Line(x, y float64) {
	*p = append(*p, LineTo{x, y})
}

// Arc adds an elliptical arc segment to (x, y).
func (p *Path) Arc(rx, ry, rotationDeg float64, largeArc, sweep bool, x, y float64) {
	*p = append(*p, ArcTo{RX: rx, RY: ry, RotationDeg: rotationDeg, LargeArc: largeArc, Sweep: sweep, X: x, Y: y})
}

// Stop closes the path back to its start point when closeLoop is true.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
