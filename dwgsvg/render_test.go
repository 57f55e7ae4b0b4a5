package dwgsvg

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

func TestRenderLineProducesPathElement(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{Start: dwgmodel.Point3{X: 0, Y: 0}, End: dwgmodel.Point3{X: 10, Y: 10}},
		},
	}
	m := testModel{modelSpace: ms}

	out, err := RenderBytes(m, Options{ModelSpaceOnly: true})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatalf("output is not a well-formed SVG document: %s", svg)
	}
	if !strings.Contains(svg, `<path id="dwg-object-0"`) {
		t.Errorf("expected a rendered LINE path, got: %s", svg)
	}
}

func TestRenderLineProjectsThroughOCSForTiltedExtrusion(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{
				Start:     dwgmodel.Point3{X: 0, Y: 0},
				End:       dwgmodel.Point3{X: 10, Y: 10},
				Extrusion: dwgmodel.Point3{Z: -1},
			},
		},
	}
	m := testModel{modelSpace: ms}

	out, err := RenderBytes(m, Options{ModelSpaceOnly: true})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "-10.000000,0.000000") {
		t.Errorf("expected the -Z-extruded LINE endpoint to be OCS-projected (x negated), got: %s", svg)
	}
}

func TestRenderCircleSkipsNaNExtrusion(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Circle{
				Center:    dwgmodel.Point3{X: 5, Y: 5},
				Radius:    2,
				Extrusion: dwgmodel.Point3{X: math.NaN(), Z: 1},
			},
		},
	}
	m := testModel{modelSpace: ms}

	out, err := RenderBytes(m, Options{ModelSpaceOnly: true})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if strings.Contains(string(out), "NaN") {
		t.Errorf("expected a CIRCLE with NaN extrusion to be skipped, got NaN in output: %s", string(out))
	}
}

func TestRenderArcSkipsNaNAngle(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Arc{
				Center:     dwgmodel.Point3{X: 0, Y: 0},
				Radius:     2,
				StartAngle: math.NaN(),
				EndAngle:   1,
				Extrusion:  dwgmodel.Point3{Z: 1},
			},
		},
	}
	m := testModel{modelSpace: ms}

	out, err := RenderBytes(m, Options{ModelSpaceOnly: true})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if strings.Contains(string(out), "NaN") {
		t.Errorf("expected an ARC with NaN start angle to be skipped, got NaN in output: %s", string(out))
	}
}

func TestRenderNilModelReturnsSentinel(t *testing.T) {
	err := Render(io.Discard, nil, Options{})
	if err == nil {
		t.Fatalf("Render(nil model) should return an error")
	}
	if !errors.Is(err, ErrInvalidDWG) {
		t.Errorf("Render(nil model) = %v, want an error wrapping ErrInvalidDWG", err)
	}
}

func TestRenderInsertEmitsUseAndDefs(t *testing.T) {
	block := &dwgmodel.BlockHeader{
		Name:        "MY_BLOCK",
		AbsoluteRef: 42,
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
	m := testModel{modelSpace: ms, blocks: []*dwgmodel.BlockHeader{block}}

	out, err := RenderBytes(m, Options{ModelSpaceOnly: true})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, `xlink:href="#symbol-42"`) {
		t.Errorf("expected a <use> referencing #symbol-42, got: %s", svg)
	}
	if !strings.Contains(svg, `<g id="symbol-42">`) {
		t.Errorf("expected <defs> to contain a symbol-42 group, got: %s", svg)
	}
	if !strings.Contains(svg, "<defs>") {
		t.Errorf("expected a <defs> section, got: %s", svg)
	}
}

func TestRenderEmitsUnreferencedBlockAsSymbol(t *testing.T) {
	unused := &dwgmodel.BlockHeader{
		Name:        "UNUSED_BLOCK",
		AbsoluteRef: 7,
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{Start: dwgmodel.Point3{X: 0, Y: 0}, End: dwgmodel.Point3{X: 1, Y: 1}},
		},
	}
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{Start: dwgmodel.Point3{X: 0, Y: 0}, End: dwgmodel.Point3{X: 10, Y: 10}},
		},
	}
	m := testModel{modelSpace: ms, blocks: []*dwgmodel.BlockHeader{unused}}

	out, err := RenderBytes(m, Options{ModelSpaceOnly: true})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, `<g id="symbol-7">`) {
		t.Errorf("expected an unreferenced block to still be emitted under <defs>, got: %s", svg)
	}
	if !strings.Contains(svg, "<!-- BLOCK UNUSED_BLOCK -->") {
		t.Errorf("expected the block's escaped name as a comment, got: %s", svg)
	}
}

func TestRenderPaperSpaceWithZeroEntitiesFallsBackToModelSpace(t *testing.T) {
	paper := &dwgmodel.BlockHeader{Name: "*Paper_Space"}
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Line{Start: dwgmodel.Point3{X: 0, Y: 0}, End: dwgmodel.Point3{X: 10, Y: 10}},
		},
	}
	m := testModel{paperSpace: paper, modelSpace: ms}

	out, err := RenderBytes(m, Options{})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if !strings.Contains(string(out), `<path id="dwg-object-0"`) {
		t.Errorf("expected model space's LINE to be rendered when paper space is empty, got: %s", string(out))
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	ms := &dwgmodel.BlockHeader{
		Name: "*Model_Space",
		Owned: []dwgmodel.Entity{
			dwgmodel.Circle{Center: dwgmodel.Point3{X: 5, Y: 5}, Radius: 2, Extrusion: dwgmodel.Point3{Z: 1}},
		},
	}
	m := testModel{modelSpace: ms}
	opts := Options{ModelSpaceOnly: true}

	a, err1 := RenderBytes(m, opts)
	b, err2 := RenderBytes(m, opts)
	if err1 != nil || err2 != nil {
		t.Fatalf("RenderBytes errors: %v, %v", err1, err2)
	}
	if string(a) != string(b) {
		t.Errorf("Render is not deterministic across identical calls")
	}
}
