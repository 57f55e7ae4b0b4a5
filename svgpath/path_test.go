package svgpath

import "testing"

func TestLineToSVGPath(t *testing.T) {
	var p Path
	p.Move(0, 0)
	p.Line(10, 20)

	want := "M 0.000000,0.000000 L 10.000000,20.000000"
	if got := p.ToSVGPath(); got != want {
		t.Errorf("ToSVGPath() = %q, want %q", got, want)
	}
}

func TestArcToSVGPath(t *testing.T) {
	var p Path
	p.Move(0, 0)
	p.Arc(5, 5, 0, true, false, 10, 0)

	want := "M 0.000000,0.000000 A 5.000000,5.000000 0.000000 1,0 10.000000,0.000000"
	if got := p.ToSVGPath(); got != want {
		t.Errorf("ToSVGPath() = %q, want %q", got, want)
	}
}

func TestStopClosesLoop(t *testing.T) {
	var p Path
	p.Move(0, 0)
	p.Line(1, 1)
	p.Stop(true)

	want := "M 0.000000,0.000000 L 1.000000,1.000000 Z"
	if got := p.ToSVGPath(); got != want {
		t.Errorf("ToSVGPath() = %q, want %q", got, want)
	}
}

func TestStopWithoutCloseOmitsZ(t *testing.T) {
	var p Path
	p.Move(0, 0)
	p.Line(1, 1)
	p.Stop(false)

	want := "M 0.000000,0.000000 L 1.000000,1.000000"
	if got := p.ToSVGPath(); got != want {
		t.Errorf("ToSVGPath() = %q, want %q", got, want)
	}
}
