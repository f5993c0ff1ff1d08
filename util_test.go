package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testEps = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxPoint compares points within testEps, for go-cmp diffs of segments.
var approxPoint = cmp.Comparer(func(a, b Point) bool {
	return a.Approx(b, testEps)
})

// checkInterpolation verifies that segment endpoints carry the input points
// over exactly (the wrap pair included for closed curves).
func checkInterpolation(t *testing.T, points []Point, segs []Segment, closed bool) {
	t.Helper()
	for i, s := range segs {
		next := i + 1
		if closed {
			next = (i + 1) % len(points)
		}
		if !s.P0.Approx(points[i], testEps) {
			t.Errorf("segment %d starts at %v, want %v", i, s.P0, points[i])
		}
		if !s.P1.Approx(points[next], testEps) {
			t.Errorf("segment %d ends at %v, want %v", i, s.P1, points[next])
		}
	}
}

// checkStraight verifies that a single segment is the straight line from p0
// to p1 with no injected curvature (control points on the chord).
func checkStraight(t *testing.T, s Segment, p0, p1 Point) {
	t.Helper()
	if !s.P0.Approx(p0, testEps) || !s.P1.Approx(p1, testEps) {
		t.Fatalf("segment endpoints %v..%v, want %v..%v", s.P0, s.P1, p0, p1)
	}
	chord := p1.Sub(p0)
	if cross := chord.Cross(s.CP1.Sub(p0)); math.Abs(cross) > testEps {
		t.Errorf("CP1 %v not collinear with chord (cross %g)", s.CP1, cross)
	}
	if cross := chord.Cross(s.CP2.Sub(p0)); math.Abs(cross) > testEps {
		t.Errorf("CP2 %v not collinear with chord (cross %g)", s.CP2, cross)
	}
}

// mirrorX reflects a point about the vertical axis x = axis.
func mirrorX(p Point, axis float64) Point {
	return Point{X: 2*axis - p.X, Y: p.Y}
}

// checkMirrorSymmetry verifies that a fitted curve over a point set that is
// symmetric about a vertical axis has mirror-symmetric control points:
// segment i must be the reverse mirror image of segment m-1-i.
func checkMirrorSymmetry(t *testing.T, segs []Segment, axis float64) {
	t.Helper()
	m := len(segs)
	for i := 0; i <= m/2; i++ {
		a, b := segs[i], segs[m-1-i]
		if !a.P0.Approx(mirrorX(b.P1, axis), testEps) ||
			!a.CP1.Approx(mirrorX(b.CP2, axis), testEps) ||
			!a.CP2.Approx(mirrorX(b.CP1, axis), testEps) ||
			!a.P1.Approx(mirrorX(b.P0, axis), testEps) {
			t.Errorf("segments %d and %d are not mirror images:\n  %+v\n  %+v", i, m-1-i, a, b)
		}
	}
}
