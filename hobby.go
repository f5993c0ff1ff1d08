package spline

import (
	"fmt"
	"log/slog"
	"math"
)

// Hobby fits a curve through the given points using John Hobby's algorithm
// from METAFONT. The result is G1-continuous (continuous tangent direction)
// and visually "relaxed": Hobby curves distribute bending more evenly than a
// C² spline and respond locally to moved points.
//
// Options: [Closed] produces a loop (at least 3 points, else an empty
// result); [WithCurl] sets the endpoint curl of open curves; [WithTension]
// injects a per-segment tension callback.
//
// Open curves with fewer than 2 points yield an empty result; exactly 2
// points yield a single straight segment. A closed curve can fail with
// [ErrSingularSystem] if the loop geometry makes the angle system singular.
// The input slice is never modified.
func Hobby(points []Point, opts ...Option) ([]Segment, error) {
	o := applyOptions(opts)
	if o.closed {
		return hobbyClosed(points, o)
	}
	return hobbyOpen(points, o), nil
}

// hobbyOpen solves for one departure angle per point. The first and last
// rows encode the curl boundary condition, the interior rows the mock
// curvature balance at each knot, weighted by the adjacent chord lengths.
func hobbyOpen(points []Point, o curveOptions) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	if n == 2 {
		// A single chord has no turning angles to solve for.
		return []Segment{lineSegment(points[0], points[1])}
	}

	m := n - 1 // segment count
	chords, dist := chordLengths(points, false)

	// Turning angles at the interior vertices; the endpoints have none.
	gamma := make([]float64, n)
	for i := 1; i < m; i++ {
		gamma[i] = chords[i-1].Angle(chords[i])
	}

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)

	b[0] = 2 + o.curl
	c[0] = 2*o.curl + 1
	d[0] = -(2*o.curl + 1) * gamma[1]
	for i := 1; i < m; i++ {
		a[i] = 1 / dist[i-1]
		b[i] = 2 * (dist[i-1] + dist[i]) / (dist[i-1] * dist[i])
		c[i] = 1 / dist[i]
		d[i] = -(2*gamma[i]*dist[i] + gamma[i+1]*dist[i-1]) / (dist[i-1] * dist[i])
	}
	a[m] = 2*o.curl + 1
	b[m] = 2 + o.curl
	d[m] = 0

	alpha := SolveTridiagonal(a, b, c, d)

	beta := make([]float64, m)
	for i := 0; i < m-1; i++ {
		beta[i] = -gamma[i+1] - alpha[i+1]
	}
	beta[m-1] = -alpha[m]

	segs := make([]Segment, m)
	for i := 0; i < m; i++ {
		t1, t2 := tensions(o.tension, i, gamma[i], gamma[i+1])
		segs[i] = hobbySegment(points[i], points[i+1], chords[i], dist[i],
			alpha[i], beta[i], t1, t2)
	}
	return segs
}

// hobbyClosed is the wrap-around variant: every vertex is interior, every
// row uses the mock curvature equation with modular neighbors, and the
// resulting cyclic system is solved via Sherman-Morrison.
func hobbyClosed(points []Point, o curveOptions) ([]Segment, error) {
	m := len(points) // segment count equals point count
	if m < 3 {
		Logger().Debug("closed hobby curve needs at least 3 points", slog.Int("points", m))
		return nil, nil
	}

	chords, dist := chordLengths(points, true)

	gamma := make([]float64, m)
	for i := 0; i < m; i++ {
		prev := (i - 1 + m) % m
		gamma[i] = chords[prev].Angle(chords[i])
	}

	a := make([]float64, m)
	b := make([]float64, m)
	c := make([]float64, m)
	d := make([]float64, m)
	for i := 0; i < m; i++ {
		prev := (i - 1 + m) % m
		next := (i + 1) % m
		a[i] = 1 / dist[prev]
		b[i] = 2 * (dist[prev] + dist[i]) / (dist[prev] * dist[i])
		c[i] = 1 / dist[i]
		d[i] = -(2*gamma[i]*dist[i] + gamma[next]*dist[prev]) / (dist[prev] * dist[i])
	}

	// a[0] and c[m-1] are exactly the wrap coefficients in SolveCyclic's
	// storage convention.
	alpha, err := SolveCyclic(a, b, c, d)
	if err != nil {
		return nil, fmt.Errorf("closed hobby curve: %w", err)
	}

	segs := make([]Segment, m)
	for i := 0; i < m; i++ {
		next := (i + 1) % m
		beta := -gamma[next] - alpha[next]
		t1, t2 := tensions(o.tension, i, gamma[i], gamma[next])
		segs[i] = hobbySegment(points[i], points[next], chords[i], dist[i],
			alpha[i], beta, t1, t2)
	}
	return segs, nil
}

// hobbySegment builds one cubic piece from the solved departure angle alpha
// and arrival angle beta: the handles leave the chord rotated by +alpha and
// arrive rotated by -beta, with lengths from the velocity function scaled by
// the tension pair.
func hobbySegment(p0, p1 Point, chord Vec2, dist, alpha, beta float64, t1, t2 float64) Segment {
	aLen := rho(alpha, beta) * t1 * dist / 3
	bLen := rho(beta, alpha) * t2 * dist / 3
	return Segment{
		P0:  p0,
		CP1: p0.Add(chord.Rotate(alpha).Normalize().Mul(aLen)),
		CP2: p1.Add(chord.Rotate(-beta).Normalize().Mul(-bLen)),
		P1:  p1,
	}
}

// rho is Hobby's velocity function: it maps the departure and arrival angles
// of a segment to a normalized handle length.
//
// This is the full sqrt(5) form from the METAFONT sources, not the simpler
// closed form some texts quote (Jackowski's formula 28); the two produce
// visibly different curves.
func rho(theta, phi float64) float64 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	s5 := math.Sqrt(5)

	num := 4 + math.Sqrt(8)*(st-sp/16)*(sp-st/16)*(ct-cp)
	den := 2 + (s5-1)*ct + (3-s5)*cp
	return num / den
}

// chordLengths computes the chord vectors between consecutive points (the
// wrap pair included for closed curves) and their lengths floored at epsilon
// so coincident points cannot divide by zero downstream.
func chordLengths(points []Point, closed bool) ([]Vec2, []float64) {
	m := len(points) - 1
	if closed {
		m = len(points)
	}
	chords := make([]Vec2, m)
	dist := make([]float64, m)
	for i := 0; i < m; i++ {
		next := (i + 1) % len(points)
		chords[i] = points[next].Sub(points[i])
		dist[i] = math.Max(chords[i].Length(), epsilon)
	}
	return chords, dist
}

// tensions invokes the optional tension callback for a segment, converting
// the adjacent turning angles to degrees. A nil callback is the identity.
func tensions(fn TensionFunc, seg int, inRad, outRad float64) (float64, float64) {
	if fn == nil {
		return 1, 1
	}
	const radToDeg = 180 / math.Pi
	return fn(seg, inRad*radToDeg, outRad*radToDeg)
}
