package dwgsvg

import (
	"testing"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

func TestResolveLineweightKnownCode(t *testing.T) {
	m := newStubModel()
	got := resolveLineweight(m, 100, nil)
	if got != 1.0 {
		t.Errorf("resolveLineweight(100) = %f, want 1.0", got)
	}
}

func TestResolveLineweightByLayer(t *testing.T) {
	m := newStubModel()
	layer := &dwgmodel.Layer{LineWt: 50}
	got := resolveLineweight(m, -1, layer)
	if got != 0.5 {
		t.Errorf("resolveLineweight(ByLayer) = %f, want 0.5", got)
	}
}

func TestResolveLineweightNonPositiveIsThin(t *testing.T) {
	m := newStubModel()
	got := resolveLineweight(m, -3, nil)
	if got != 0.1 {
		t.Errorf("resolveLineweight(-3) = %f, want 0.1", got)
	}
}

func TestResolveLineweightByLayerNilLayer(t *testing.T) {
	m := newStubModel()
	got := resolveLineweight(m, -1, nil)
	if got != 0.1 {
		t.Errorf("resolveLineweight(ByLayer, nil layer) = %f, want 0.1", got)
	}
}
