// Package dwgmodel declares the read-only accessor surface the renderer
// borrows from a loaded drawing document. Nothing here parses a DWG file;
// a host process wires a concrete Model implementation from whatever
// parser it owns.
package dwgmodel

import "math"

// ObjectRef is an opaque handle into the owning document's object table.
// The renderer never interprets a ref itself; it only asks the Model to
// resolve one.
type ObjectRef struct {
	AbsoluteRef int64
}

// Valid reports whether the reference is non-zero.
func (r ObjectRef) Valid() bool { return r.AbsoluteRef != 0 }

// Point3 is a 3D coordinate or vector, used for both OCS and WCS values
// depending on context.
type Point3 struct {
	X, Y, Z float64
}

// IsNaN reports whether any component is NaN, mirroring the source's
// isnan_3BD guard.
func (p Point3) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Scale(s float64) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }

// Length returns the Euclidean norm of the vector.
func (p Point3) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// Point2 is a planar coordinate, used for OCS 2D corners and LWPOLYLINE
// vertices.
type Point2 struct {
	X, Y float64
}

func (p Point2) IsNaN() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

// ColorSpec captures a DWG CMC/ENC color value before resolution.
// Index 256 means ByLayer, 0 means ByBlock/default.
type ColorSpec struct {
	Index int
	RGB   uint32
	Flag  uint8
}

const (
	ColorFlagRGB   uint8 = 0x80
	ColorFlagACI24 uint8 = 0x40
)

// Lineweight is a DWG lineweight code. -1 means ByLayer, -2 ByBlock, -3 Default.
type Lineweight int

const (
	LineweightByLayer Lineweight = -1
	LineweightByBlock Lineweight = -2
	LineweightDefault Lineweight = -3
)

// Layer is the supporting entity carrying visibility and default
// color/lineweight for entities that inherit ByLayer.
type Layer struct {
	Name     string
	Off      bool
	Frozen   bool
	Color    ColorSpec
	LineWt   Lineweight
}

func (l *Layer) Visible() bool {
	return l != nil && !l.Off && !l.Frozen
}

// Style is the supporting entity carrying the font mapping inputs for
// TEXT/ATTDEF.
type Style struct {
	FontFile    string
	WidthFactor float64
}

// ImageDef is the supporting entity an IMAGE entity references for its
// backing file path.
type ImageDef struct {
	FilePath string
}

// EntityKind tags the concrete Go type behind the Entity interface,
// used to drive the renderer's dispatch table without a type switch at
// every call site. The extents collector switches on the concrete type
// instead.
type EntityKind uint8

const (
	KindLine EntityKind = iota
	KindCircle
	KindArc
	KindEllipse
	KindPoint
	KindSolid
	Kind3DFace
	KindPolyline2D
	KindLWPolyline
	KindHatch
	KindText
	KindAttdef
	KindInsert
	KindImage
	KindXline
	KindRay
	KindVertex2D
)

// Entity is the sum-type interface every renderable DWG entity
// implements. Kind reports which concrete struct is behind the
// interface so dispatch tables can be built once, keyed by EntityKind,
// instead of doing a type switch inline at every call site.
type Entity interface {
	Kind() EntityKind
	Index() int
	Invisible() bool
	EntityLayer() *Layer
	EntityColor() ColorSpec
}

// BaseEntity holds the fields common to every entity row in the data
// model (§3): its sequence index in the document, the invisible bit,
// and its resolved layer/color inputs. The renderer does not use the
// index for id="dwg-object-<n>": n comes from a per-render counter, so
// it need not equal Idx.
type BaseEntity struct {
	Idx       int
	Invis     bool
	Layer     *Layer
	Color     ColorSpec
}

func (b BaseEntity) Index() int             { return b.Idx }
func (b BaseEntity) Invisible() bool        { return b.Invis }
func (b BaseEntity) EntityLayer() *Layer    { return b.Layer }
func (b BaseEntity) EntityColor() ColorSpec { return b.Color }

// BlockHeader is a named, owned-entity-carrying definition. A block
// referenced by INSERT is emitted under <defs> keyed by AbsoluteRef.
type BlockHeader struct {
	Name        string
	AbsoluteRef int64
	BasePoint   Point3
	Owned       []Entity
}

// Entities returns the block's owned entities in stable order.
func (b *BlockHeader) Entities() []Entity { return b.Owned }

// Model is the read-only accessor surface the renderer consumes. A host
// process constructs one from whatever DWG parser it owns; this package
// never constructs a Model from a file itself (DWG parsing is out of
// scope).
type Model interface {
	PaperSpace() (*BlockHeader, bool)
	ModelSpace() (*BlockHeader, bool)
	BlockControl() []*BlockHeader
	ResolveRef(ref ObjectRef) (Entity, bool)
	RGBPalette() *[256][3]byte
	LineweightMM(code Lineweight) float64
	Transcoder() Transcoder
	// ResolveObjectRefs performs the one-shot, idempotent reference
	// resolution the source calls before iteration. Safe to call more
	// than once.
	ResolveObjectRefs() error
	// StoredExtents is the model's own cached bounding box, used as a
	// fallback when the extents collector finds nothing renderable.
	StoredExtents() (xmin, ymin, xmax, ymax float64, ok bool)
}
