package spline

import (
	"fmt"
	"log/slog"
)

// Natural fits a natural cubic spline through the given points and returns
// one cubic Bézier segment per consecutive pair. The spline is C²-continuous
// with "natural" boundary conditions: zero second derivative at both ends.
//
// Options: [Closed] produces a C²-continuous loop through all points
// (requires at least 3 points; fewer yield an empty result). Other options
// are ignored.
//
// Open curves with fewer than 2 points yield an empty result; exactly 2
// points yield a single straight segment. The input slice is never modified.
func Natural(points []Point, opts ...Option) ([]Segment, error) {
	o := applyOptions(opts)
	if o.closed {
		return naturalClosed(points)
	}
	return naturalOpen(points), nil
}

// naturalOpen solves for the first control point of each segment; the lower
// rows of the system encode C² continuity at the interior knots and the
// first/last rows the natural boundary conditions. The unknowns separate per
// coordinate axis: same matrix, different right-hand side.
func naturalOpen(points []Point) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	if n == 2 {
		return []Segment{lineSegment(points[0], points[1])}
	}

	m := n - 1 // segment count
	a := make([]float64, m)
	b := make([]float64, m)
	c := make([]float64, m)
	dx := make([]float64, m)
	dy := make([]float64, m)

	b[0] = 2
	c[0] = 1
	dx[0] = points[0].X + 2*points[1].X
	dy[0] = points[0].Y + 2*points[1].Y
	for i := 1; i < m-1; i++ {
		a[i] = 1
		b[i] = 4
		c[i] = 1
		dx[i] = 4*points[i].X + 2*points[i+1].X
		dy[i] = 4*points[i].Y + 2*points[i+1].Y
	}
	a[m-1] = 2
	b[m-1] = 7
	dx[m-1] = 8*points[m-1].X + points[m].X
	dy[m-1] = 8*points[m-1].Y + points[m].Y

	p1x := SolveTridiagonal(a, b, c, dx)
	p1y := SolveTridiagonal(a, b, c, dy)

	segs := make([]Segment, m)
	for i := 0; i < m; i++ {
		var cp2 Point
		if i < m-1 {
			cp2 = Point{X: 2*points[i+1].X - p1x[i+1], Y: 2*points[i+1].Y - p1y[i+1]}
		} else {
			cp2 = Point{X: (points[m].X + p1x[m-1]) / 2, Y: (points[m].Y + p1y[m-1]) / 2}
		}
		segs[i] = Segment{
			P0:  points[i],
			CP1: Point{X: p1x[i], Y: p1y[i]},
			CP2: cp2,
			P1:  points[i+1],
		}
	}
	return segs
}

// naturalClosed solves the wrap-around C² system: every knot is interior, so
// each row is the 1/4/1 continuity equation with modular neighbors and the
// corner coefficients feed the cyclic solver.
func naturalClosed(points []Point) ([]Segment, error) {
	m := len(points) // segment count equals point count
	if m < 3 {
		Logger().Debug("closed natural spline needs at least 3 points", slog.Int("points", m))
		return nil, nil
	}

	a := make([]float64, m)
	b := make([]float64, m)
	c := make([]float64, m)
	dx := make([]float64, m)
	dy := make([]float64, m)
	for i := 0; i < m; i++ {
		next := (i + 1) % m
		a[i] = 1
		b[i] = 4
		c[i] = 1
		dx[i] = 4*points[i].X + 2*points[next].X
		dy[i] = 4*points[i].Y + 2*points[next].Y
	}

	p1x, err := SolveCyclic(a, b, c, dx)
	if err != nil {
		return nil, fmt.Errorf("closed natural spline: %w", err)
	}
	p1y, err := SolveCyclic(a, b, c, dy)
	if err != nil {
		return nil, fmt.Errorf("closed natural spline: %w", err)
	}

	segs := make([]Segment, m)
	for i := 0; i < m; i++ {
		next := (i + 1) % m
		segs[i] = Segment{
			P0:  points[i],
			CP1: Point{X: p1x[i], Y: p1y[i]},
			CP2: Point{X: 2*points[next].X - p1x[next], Y: 2*points[next].Y - p1y[next]},
			P1:  points[next],
		}
	}
	return segs, nil
}
