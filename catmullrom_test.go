package spline

import (
	"math"
	"testing"
)

func TestCatmullRom_SegmentCount(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		opts   []Option
		want   int
	}{
		{"empty", nil, nil, 0},
		{"single point", []Point{Pt(1, 1)}, nil, 0},
		{"two points", []Point{Pt(0, 0), Pt(10, 0)}, nil, 1},
		{"four points", []Point{Pt(0, 0), Pt(10, 0), Pt(40, 30), Pt(50, 60)}, nil, 3},
		{"two points closed", []Point{Pt(0, 0), Pt(10, 0)}, []Option{Closed()}, 0},
		{"four points closed", []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}, []Option{Closed()}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := CatmullRom(tt.points, tt.opts...)
			if len(segs) != tt.want {
				t.Errorf("got %d segments, want %d", len(segs), tt.want)
			}
		})
	}
}

func TestCatmullRom_Interpolation(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 20), Pt(30, 10), Pt(50, 40), Pt(70, 5)}
	checkInterpolation(t, points, CatmullRom(points), false)
	checkInterpolation(t, points, CatmullRom(points, Closed()), true)
}

func TestCatmullRom_TwoPointsStraightLine(t *testing.T) {
	segs := CatmullRom([]Point{Pt(0, 0), Pt(10, 0)})
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	checkStraight(t, segs[0], Pt(0, 0), Pt(10, 0))
}

func TestCatmullRom_CollinearPointsStayCollinear(t *testing.T) {
	segs := CatmullRom([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)})
	for i, s := range segs {
		if math.Abs(s.CP1.Y) > testEps || math.Abs(s.CP2.Y) > testEps {
			t.Errorf("segment %d escapes the line: %+v", i, s)
		}
	}
}

// TestCatmullRom_AlphaDifferentiation: uniform, centripetal and chordal
// parameterizations must produce three distinct control point sets. The
// points deliberately have unequal neighbor distances, since equal chords
// make all parameterizations coincide.
func TestCatmullRom_AlphaDifferentiation(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 0), Pt(40, 30), Pt(50, 60)}

	uniform := CatmullRom(points, WithAlpha(0))
	centripetal := CatmullRom(points, WithAlpha(0.5))
	chordal := CatmullRom(points, WithAlpha(1))

	distinct := func(a, b []Segment) bool {
		for i := range a {
			if !a[i].CP1.Approx(b[i].CP1, testEps) || !a[i].CP2.Approx(b[i].CP2, testEps) {
				return true
			}
		}
		return false
	}
	if !distinct(uniform, centripetal) {
		t.Error("alpha 0 and 0.5 produced identical control points")
	}
	if !distinct(centripetal, chordal) {
		t.Error("alpha 0.5 and 1 produced identical control points")
	}
	if !distinct(uniform, chordal) {
		t.Error("alpha 0 and 1 produced identical control points")
	}
}

func TestCatmullRom_DefaultIsCentripetal(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 0), Pt(40, 30), Pt(50, 60)}
	diff(t, CatmullRom(points, WithAlpha(0.5)), CatmullRom(points), approxPoint)
}

func TestCatmullRom_G1Continuity(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 0), Pt(40, 30), Pt(50, 60), Pt(80, 20)}

	for _, closed := range []bool{false, true} {
		var opts []Option
		if closed {
			opts = append(opts, Closed())
		}
		segs := CatmullRom(points, opts...)

		m := len(segs)
		start := 1
		if closed {
			start = 0
		}
		for i := start; i < m; i++ {
			prev, next := segs[(i-1+m)%m], segs[i]
			in := prev.P1.Sub(prev.CP2).Normalize()
			out := next.CP1.Sub(next.P0).Normalize()
			if !in.Approx(out, 1e-9) {
				t.Errorf("closed=%v knot %d: tangent direction jump %v -> %v", closed, i, in, out)
			}
		}
	}
}

// TestCatmullRom_GhostStartTangent: with uniform parameterization the
// reflected ghost point makes the start tangent exactly the first chord.
func TestCatmullRom_GhostStartTangent(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 10)}
	segs := CatmullRom(points, WithAlpha(0))

	want := points[1].Sub(points[0]).Div(3)
	got := segs[0].CP1.Sub(segs[0].P0)
	if !got.Approx(want, testEps) {
		t.Errorf("start handle = %v, want %v", got, want)
	}
}

func TestCatmullRom_CoincidentPointsFinite(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	for _, segs := range [][]Segment{CatmullRom(points), CatmullRom(points, Closed())} {
		for i, s := range segs {
			for _, p := range []Point{s.P0, s.CP1, s.CP2, s.P1} {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
					t.Fatalf("segment %d has non-finite point %v", i, p)
				}
			}
		}
	}
}
