package dwgsvg

import (
	"testing"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

func TestComputeModelSpaceExtentsFromLine(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{Start: dwgmodel.Point3{X: 0, Y: 0}, End: dwgmodel.Point3{X: 10, Y: 5}},
		},
	}
	m := testModel{modelSpace: ms}
	xmin, ymin, xmax, ymax := computeModelSpaceExtents(m, true)
	if xmin != 0 || ymin != 0 || xmax != 10 || ymax != 5 {
		t.Errorf("computeModelSpaceExtents = %f,%f,%f,%f, want 0,0,10,5", xmin, ymin, xmax, ymax)
	}
}

func TestComputeModelSpaceExtentsDefaultsWhenEmpty(t *testing.T) {
	m := testModel{}
	xmin, ymin, xmax, ymax := computeModelSpaceExtents(m, true)
	if xmin != 0 || ymin != 0 || xmax != 100 || ymax != 100 {
		t.Errorf("computeModelSpaceExtents(empty) = %f,%f,%f,%f, want 0,0,100,100", xmin, ymin, xmax, ymax)
	}
}

func TestComputeModelSpaceExtentsCircleUsesFullBoundingSquare(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Circle{Center: dwgmodel.Point3{X: 0, Y: 0}, Radius: 1, Extrusion: dwgmodel.Point3{Z: 1}},
		},
	}
	m := testModel{modelSpace: ms}
	xmin, ymin, xmax, ymax := computeModelSpaceExtents(m, true)
	if xmin != -1 || ymin != -1 || xmax != 1 || ymax != 1 {
		t.Errorf("computeModelSpaceExtents(circle) = %f,%f,%f,%f, want -1,-1,1,1", xmin, ymin, xmax, ymax)
	}
}

func TestCollectInsertExtentsTransformsBlockBounds(t *testing.T) {
	block := &dwgmodel.BlockHeader{
		AbsoluteRef: 1,
		BasePoint:   dwgmodel.Point3{},
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{Start: dwgmodel.Point3{X: 0, Y: 0}, End: dwgmodel.Point3{X: 1, Y: 1}},
		},
	}
	ins := dwgmodel.Insert{
		InsertionPoint: dwgmodel.Point3{X: 10, Y: 10},
		Scale:          dwgmodel.Point3{X: 2, Y: 2, Z: 1},
		Block:          block,
	}
	ms := &dwgmodel.BlockHeader{Name: "*Model_Space", Owned: []dwgmodel.Entity{ins}}
	m := testModel{modelSpace: ms}
	xmin, ymin, xmax, ymax := computeModelSpaceExtents(m, true)
	if xmin != 10 || ymin != 10 || xmax != 12 || ymax != 12 {
		t.Errorf("computeModelSpaceExtents(insert) = %f,%f,%f,%f, want 10,10,12,12", xmin, ymin, xmax, ymax)
	}
}

// testModel is a minimal dwgmodel.Model for extents/render tests.
type testModel struct {
	paperSpace *dwgmodel.BlockHeader
	modelSpace *dwgmodel.BlockHeader
	blocks     []*dwgmodel.BlockHeader
	refs       map[int64]dwgmodel.Entity
}

func (m testModel) PaperSpace() (*dwgmodel.BlockHeader, bool) { return m.paperSpace, m.paperSpace != nil }
func (m testModel) ModelSpace() (*dwgmodel.BlockHeader, bool) { return m.modelSpace, m.modelSpace != nil }
func (m testModel) BlockControl() []*dwgmodel.BlockHeader     { return m.blocks }
func (m testModel) ResolveRef(ref dwgmodel.ObjectRef) (dwgmodel.Entity, bool) {
	e, ok := m.refs[ref.AbsoluteRef]
	return e, ok
}
func (m testModel) RGBPalette() *[256][3]byte                     { return dwgmodel.DefaultRGBPalette }
func (m testModel) LineweightMM(code dwgmodel.Lineweight) float64 { return dwgmodel.LineweightMM(code) }
func (m testModel) Transcoder() dwgmodel.Transcoder                { return dwgmodel.TextTranscoder{} }
func (m testModel) ResolveObjectRefs() error                       { return nil }
func (m testModel) StoredExtents() (float64, float64, float64, float64, bool) {
	return 0, 0, 0, 0, false
}
