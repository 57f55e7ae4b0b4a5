package dwgmodel

// Line is a straight segment between two WCS endpoints.
type Line struct {
	BaseEntity
	Start, End Point3
	Extrusion  Point3
}

func (Line) Kind() EntityKind { return KindLine }

// Circle is a full circle in the entity's OCS plane.
type Circle struct {
	BaseEntity
	Center    Point3
	Radius    float64
	Extrusion Point3
}

func (Circle) Kind() EntityKind { return KindCircle }

// Arc is a circular arc, angles CCW in OCS radians.
type Arc struct {
	BaseEntity
	Center              Point3
	Radius              float64
	StartAngle, EndAngle float64
	Extrusion           Point3
}

func (Arc) Kind() EntityKind { return KindArc }

// Ellipse is defined by its major-axis endpoint vector and a minor/major
// axis ratio, with an optional sub-arc carved out by Start/EndAngle.
type Ellipse struct {
	BaseEntity
	Center             Point3
	SMAxis             Point3 // vector to major-axis endpoint, WCS
	AxisRatio          float64
	StartAngle, EndAngle float64
}

func (Ellipse) Kind() EntityKind { return KindEllipse }

// Point is a single position, rendered as a tiny circle.
type Point struct {
	BaseEntity
	Position  Point3
	Extrusion Point3
}

func (Point) Kind() EntityKind { return KindPoint }

// Solid is a 4-corner OCS polygon.
type Solid struct {
	BaseEntity
	Corners   [4]Point2
	Extrusion Point3
}

func (Solid) Kind() EntityKind { return KindSolid }

// Face3D is a 4-corner WCS polygon with a per-edge invisibility bitmask.
type Face3D struct {
	BaseEntity
	Corners    [4]Point3
	InvisFlags uint8
}

func (Face3D) Kind() EntityKind { return Kind3DFace }

// Vertex2D is an owned vertex of a POLYLINE_2D, dereferenced via
// Model.ResolveRef.
type Vertex2D struct {
	BaseEntity
	Point Point2
	Flag  uint16
}

func (Vertex2D) Kind() EntityKind { return KindVertex2D }

const VertexFlagSplineFrameControl uint16 = 16

// Polyline2D walks its owned vertex list via VertexRefs, each resolved
// through the Model.
type Polyline2D struct {
	BaseEntity
	VertexRefs []ObjectRef
	Closed     bool
	Extrusion  Point3
}

func (Polyline2D) Kind() EntityKind { return KindPolyline2D }

// LWVertex is one point of an LWPOLYLINE's inline vertex array, with an
// optional bulge to the next vertex.
type LWVertex struct {
	Point Point2
	Bulge float64
}

// LWPolyline stores its vertices inline (no ObjectRef indirection,
// unlike Polyline2D).
type LWPolyline struct {
	BaseEntity
	Vertices  []LWVertex
	Closed    bool
	Extrusion Point3
}

func (LWPolyline) Kind() EntityKind { return KindLWPolyline }

// HatchCurveType tags a HATCH boundary segment's geometry kind.
type HatchCurveType uint8

const (
	HatchCurveLine HatchCurveType = 1
	HatchCurveArc  HatchCurveType = 2
	HatchCurveEllipticalArc HatchCurveType = 3
	HatchCurveSpline HatchCurveType = 4
)

// HatchSegment is one element of a segmented (non-polyline) HATCH
// boundary path.
type HatchSegment struct {
	CurveType HatchCurveType

	// LINE
	Start, End Point2

	// CIRCULAR ARC / ELLIPTICAL ARC
	Center               Point2
	Radius               float64   // CIRCULAR ARC
	Endpoint             Point2    // ELLIPTICAL ARC major-axis endpoint
	MinorMajorRatio      float64   // ELLIPTICAL ARC
	StartAngle, EndAngle float64
	IsCCW                bool

	// SPLINE
	ControlPoints []Point2
	FitPoints     []Point2
}

// HatchPath is one boundary loop of a HATCH: either a bulge-carrying
// polyline or a list of typed segments.
type HatchPath struct {
	IsPolyline bool
	HasBulges  bool
	Polyline   []LWVertex // used when IsPolyline
	Segments   []HatchSegment
}

// Hatch is a filled or outlined region bounded by one or more paths.
type Hatch struct {
	BaseEntity
	Paths      []HatchPath
	SolidFill  bool
}

func (Hatch) Kind() EntityKind { return KindHatch }

// TextAlign captures the horizontal/vertical alignment codes shared by
// TEXT and ATTDEF.
type TextAlign struct {
	Horiz int
	Vert  int
}

// Text is a single-line annotation. Rotation is always 0 for TEXT; only
// ATTDEF applies it (§4.4).
type Text struct {
	BaseEntity
	InsertionPoint Point3
	AlignmentPoint Point3
	HasAlignment   bool
	Height         float64
	WidthFactor    float64 // 0 means "use style default, then 1.0"
	Rotation       float64
	Align          TextAlign
	Style          *Style
	Extrusion      Point3
	RawText        []byte // possibly UTF-16, transcoded at render time
	IsUTF16        bool
	Codepage       string
}

func (Text) Kind() EntityKind { return KindText }

// Attdef is a Text with an always-applied rotation and an extra tag
// string (unused by rendering but retained for data-model fidelity).
type Attdef struct {
	Text
	Tag string
}

func (Attdef) Kind() EntityKind { return KindAttdef }

// Insert places a BlockHeader's contents at a position with per-axis
// scale and a rotation in radians.
type Insert struct {
	BaseEntity
	InsertionPoint Point3
	Scale          Point3
	Rotation       float64
	Extrusion      Point3
	Block          *BlockHeader // nil if the block header is missing
}

func (Insert) Kind() EntityKind { return KindInsert }

// Image places a raster reference via per-pixel basis vectors.
type Image struct {
	BaseEntity
	Pt0       Point3 // WCS lower-left
	UVec      Point3 // per-pixel
	VVec      Point3 // per-pixel
	PixelW    float64
	PixelH    float64
	Def       *ImageDef
}

func (Image) Kind() EntityKind { return KindImage }

// Xline is an infinite line; Ray is semi-infinite from Point in the
// Direction. Both are clipped to the model extents at render time.
type Xline struct {
	BaseEntity
	Point     Point3
	Direction Point3
}

func (Xline) Kind() EntityKind { return KindXline }

type Ray struct {
	BaseEntity
	Point     Point3
	Direction Point3
}

func (Ray) Kind() EntityKind { return KindRay }
