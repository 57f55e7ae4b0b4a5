package svgxform

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIdentityApply(t *testing.T) {
	x, y := Identity.Apply(3, 4)
	if !almostEqual(x, 3) || !almostEqual(y, 4) {
		t.Errorf("Identity.Apply(3,4) = %f,%f, want 3,4", x, y)
	}
}

func TestTranslate(t *testing.T) {
	m := Identity.Translate(10, -5)
	x, y := m.Apply(1, 1)
	if !almostEqual(x, 11) || !almostEqual(y, -4) {
		t.Errorf("Translate: got %f,%f, want 11,-4", x, y)
	}
}

func TestScale(t *testing.T) {
	m := Identity.Scale(2, 3)
	x, y := m.Apply(5, 5)
	if !almostEqual(x, 10) || !almostEqual(y, 15) {
		t.Errorf("Scale: got %f,%f, want 10,15", x, y)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	m := Identity.Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if !almostEqual(x, 0) || !almostEqual(y, 1) {
		t.Errorf("Rotate(pi/2) of (1,0): got %f,%f, want 0,1", x, y)
	}
}

func TestMultComposesLeftToRight(t *testing.T) {
	m := Identity.Translate(1, 0).Scale(2, 2)
	x, y := m.Apply(0, 0)
	if !almostEqual(x, 2) || !almostEqual(y, 0) {
		t.Errorf("translate-then-scale of origin: got %f,%f, want 2,0", x, y)
	}
}

func TestViewportFlipsY(t *testing.T) {
	m := Viewport(0, 0, 100)
	x, y := m.Apply(10, 10)
	if !almostEqual(x, 10) || !almostEqual(y, 90) {
		t.Errorf("Viewport(0,0,100).Apply(10,10) = %f,%f, want 10,90", x, y)
	}
}

func TestViewportShiftsByExtentsOrigin(t *testing.T) {
	m := Viewport(-5, -5, 50)
	x, y := m.Apply(-5, -5)
	if !almostEqual(x, 0) || !almostEqual(y, 50) {
		t.Errorf("Viewport(-5,-5,50).Apply(-5,-5) = %f,%f, want 0,50", x, y)
	}
}

func TestNegateAngle(t *testing.T) {
	got := NegateAngle(math.Pi / 2)
	if !almostEqual(got, -90) {
		t.Errorf("NegateAngle(pi/2) = %f, want -90", got)
	}
}
