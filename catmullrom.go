package spline

import "math"

// CatmullRom fits a non-uniform Catmull-Rom spline through the given points
// and returns one cubic Bézier segment per consecutive pair. The tangents
// come from the Barry-Goldman four-point formula, so no linear system is
// solved; each segment depends only on its four surrounding points.
//
// Options: [WithAlpha] selects the knot parameterization (0 uniform,
// 0.5 centripetal, 1 chordal; the default is centripetal); [Closed]
// produces a loop using modular neighbors instead of ghost endpoints
// (at least 3 points, else an empty result).
//
// Open curves with fewer than 2 points yield an empty result; exactly 2
// points yield a single straight segment. The input slice is never modified.
func CatmullRom(points []Point, opts ...Option) []Segment {
	o := applyOptions(opts)
	n := len(points)

	if o.closed {
		if n < 3 {
			return nil
		}
		segs := make([]Segment, n)
		for i := 0; i < n; i++ {
			q0 := points[(i-1+n)%n]
			q1 := points[i]
			q2 := points[(i+1)%n]
			q3 := points[(i+2)%n]
			segs[i] = catmullRomSegment(q0, q1, q2, q3, o.alpha)
		}
		return segs
	}

	if n < 2 {
		return nil
	}
	if n == 2 {
		return []Segment{lineSegment(points[0], points[1])}
	}

	// Extend the sequence with ghost points by point reflection so every
	// real segment has four surrounding points.
	ghostStart := points[0].Reflect(points[1])
	ghostEnd := points[n-1].Reflect(points[n-2])

	segs := make([]Segment, n-1)
	for i := 0; i < n-1; i++ {
		q0 := ghostStart
		if i > 0 {
			q0 = points[i-1]
		}
		q3 := ghostEnd
		if i+2 < n {
			q3 = points[i+2]
		}
		segs[i] = catmullRomSegment(q0, points[i], points[i+1], q3, o.alpha)
	}
	return segs
}

// catmullRomSegment converts one four-point window into a cubic Bézier
// piece. The knot intervals are the neighbor distances raised to alpha and
// floored at epsilon, and the Barry-Goldman tangents are divided by 3 to
// become Bézier handles.
func catmullRomSegment(q0, q1, q2, q3 Point, alpha float64) Segment {
	t01 := knotInterval(q0, q1, alpha)
	t12 := knotInterval(q1, q2, alpha)
	t23 := knotInterval(q2, q3, alpha)

	chord := q2.Sub(q1)

	m1 := chord.Add(q1.Sub(q0).Div(t01).Sub(q2.Sub(q0).Div(t01 + t12)).Mul(t12))
	m2 := chord.Add(q3.Sub(q2).Div(t23).Sub(q3.Sub(q1).Div(t12 + t23)).Mul(t12))

	return Segment{
		P0:  q1,
		CP1: q1.Add(m1.Div(3)),
		CP2: q2.Add(m2.Div(-3)),
		P1:  q2,
	}
}

// knotInterval returns dist(p, q)^alpha with the distance floored at epsilon
// so coincident points keep the intervals positive.
func knotInterval(p, q Point, alpha float64) float64 {
	return math.Pow(math.Max(p.Distance(q), epsilon), alpha)
}
