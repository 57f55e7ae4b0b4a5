package dwgsvg

import "math"

// clipBox is the model-extents rectangle an XLINE/RAY is clipped
// against (§4.4 "RAY / XLINE").
type clipBox struct {
	xmin, ymin, xmax, ymax float64
}

// slabClip intersects the ray/line {point + t*direction, t in
// [tmin,tmax]} against box using the standard reciprocal-direction slab
// test. isRay restricts t to [0, +inf) (a RAY only extends forward from
// point); an XLINE is unrestricted in both directions.
func slabClip(px, py, dx, dy float64, box clipBox, isRay bool) (t0, t1 float64, ok bool) {
	t0, t1 = math.Inf(-1), math.Inf(1)
	if isRay {
		t0 = 0
	}
	if !slabAxis(px, dx, box.xmin, box.xmax, &t0, &t1) {
		return 0, 0, false
	}
	if !slabAxis(py, dy, box.ymin, box.ymax, &t0, &t1) {
		return 0, 0, false
	}
	if t0 > t1 {
		return 0, 0, false
	}
	if math.IsInf(t0, -1) || math.IsInf(t1, 1) {
		return 0, 0, false
	}
	return t0, t1, true
}

func slabAxis(origin, dir, lo, hi float64, t0, t1 *float64) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	inv := 1 / dir
	a, b := (lo-origin)*inv, (hi-origin)*inv
	if a > b {
		a, b = b, a
	}
	if a > *t0 {
		*t0 = a
	}
	if b < *t1 {
		*t1 = b
	}
	return *t0 <= *t1
}
