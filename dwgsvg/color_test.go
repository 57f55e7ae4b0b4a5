package dwgsvg

import (
	"testing"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

type stubModel struct {
	palette *[256][3]byte
}

func (s stubModel) PaperSpace() (*dwgmodel.BlockHeader, bool)                { return nil, false }
func (s stubModel) ModelSpace() (*dwgmodel.BlockHeader, bool)                { return nil, false }
func (s stubModel) BlockControl() []*dwgmodel.BlockHeader                    { return nil }
func (s stubModel) ResolveRef(dwgmodel.ObjectRef) (dwgmodel.Entity, bool)    { return nil, false }
func (s stubModel) RGBPalette() *[256][3]byte                                { return s.palette }
func (s stubModel) LineweightMM(code dwgmodel.Lineweight) float64            { return dwgmodel.LineweightMM(code) }
func (s stubModel) Transcoder() dwgmodel.Transcoder                          { return dwgmodel.TextTranscoder{} }
func (s stubModel) ResolveObjectRefs() error                                 { return nil }
func (s stubModel) StoredExtents() (float64, float64, float64, float64, bool) {
	return 0, 0, 0, 0, false
}

func newStubModel() stubModel {
	return stubModel{palette: dwgmodel.DefaultRGBPalette}
}

func TestResolveColorNamedACI(t *testing.T) {
	m := newStubModel()
	got := resolveColor(m, dwgmodel.ColorSpec{Index: 1}, nil)
	if got != "red" {
		t.Errorf("resolveColor(ACI 1) = %q, want %q", got, "red")
	}
}

func TestResolveColorByLayerFallsBackToLayer(t *testing.T) {
	m := newStubModel()
	layer := &dwgmodel.Layer{Color: dwgmodel.ColorSpec{Index: 3}}
	got := resolveColor(m, dwgmodel.ColorSpec{Index: 256}, layer)
	if got != "green" {
		t.Errorf("resolveColor(ByLayer -> ACI 3) = %q, want %q", got, "green")
	}
}

func TestResolveColorByLayerWithNilLayerIsBlack(t *testing.T) {
	m := newStubModel()
	got := resolveColor(m, dwgmodel.ColorSpec{Index: 256}, nil)
	if got != "black" {
		t.Errorf("resolveColor(ByLayer, nil layer) = %q, want %q", got, "black")
	}
}

func TestResolveColorRGBFlag(t *testing.T) {
	m := newStubModel()
	spec := dwgmodel.ColorSpec{RGB: 0x112233, Flag: dwgmodel.ColorFlagRGB}
	got := resolveColor(m, spec, nil)
	if got != "#112233" {
		t.Errorf("resolveColor(RGB) = %q, want %q", got, "#112233")
	}
}

func TestResolveColorByLayerWithNilLayerFallsBackToOwnEncodedACI(t *testing.T) {
	m := newStubModel()
	spec := dwgmodel.ColorSpec{Index: 256, RGB: 0xc3000003} // 0xc3-encoded ACI 3 in the low byte
	got := resolveColor(m, spec, nil)
	if got != "green" {
		t.Errorf("resolveColor(ByLayer, nil layer, 0xc3-encoded own rgb) = %q, want %q", got, "green")
	}
}

func TestResolveColorByLayerCyclePrevented(t *testing.T) {
	m := newStubModel()
	layer := &dwgmodel.Layer{}
	layer.Color = dwgmodel.ColorSpec{Index: 256} // a layer (incorrectly) pointing back at ByLayer
	got := resolveColor(m, dwgmodel.ColorSpec{Index: 256}, layer)
	if got != "black" {
		t.Errorf("resolveColor with a self-referencing ByLayer chain = %q, want %q (terminated)", got, "black")
	}
}
