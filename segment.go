package spline

import (
	"math"
	"sort"
)

// Segment is a single cubic Bézier piece of a fitted curve.
// P0 and P1 are consecutive fit points (or the wrap pair of a closed curve)
// carried over exactly; CP1 and CP2 are the derived control points.
type Segment struct {
	P0, CP1, CP2, P1 Point
}

// Start returns the starting point of the segment.
func (s Segment) Start() Point {
	return s.P0
}

// End returns the ending point of the segment.
func (s Segment) End() Point {
	return s.P1
}

// Eval evaluates the segment at parameter t (0 to 1).
func (s Segment) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * CP1 + 3(1-t)*t^2 * CP2 + t^3 * P1
	return Point{
		X: mt3*s.P0.X + 3*mt2*t*s.CP1.X + 3*mt*t2*s.CP2.X + t3*s.P1.X,
		Y: mt3*s.P0.Y + 3*mt2*t*s.CP1.Y + 3*mt*t2*s.CP2.Y + t3*s.P1.Y,
	}
}

// Tangent returns the (unnormalized) derivative vector at parameter t.
func (s Segment) Tangent(t float64) Vec2 {
	d0 := s.CP1.Sub(s.P0)
	d1 := s.CP2.Sub(s.CP1)
	d2 := s.P1.Sub(s.CP2)

	mt := 1.0 - t
	return Vec2{
		X: 3 * (d0.X*mt*mt + 2*d1.X*mt*t + d2.X*t*t),
		Y: 3 * (d0.Y*mt*mt + 2*d1.Y*mt*t + d2.Y*t*t),
	}
}

// Subdivide splits the segment at t=0.5 into two halves using de Casteljau.
func (s Segment) Subdivide() (Segment, Segment) {
	p01 := s.P0.Lerp(s.CP1, 0.5)
	p12 := s.CP1.Lerp(s.CP2, 0.5)
	p23 := s.CP2.Lerp(s.P1, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return Segment{P0: s.P0, CP1: p01, CP2: p012, P1: mid},
		Segment{P0: mid, CP1: p123, CP2: p23, P1: s.P1}
}

// Extrema returns parameter values in (0, 1) where the derivative is zero.
// For a cubic there can be up to 4 extrema (2 for x, 2 for y).
// Used for computing tight bounding boxes.
func (s Segment) Extrema() []float64 {
	result := make([]float64, 0, 4)

	// The derivative is a quadratic with Bernstein coefficients derived
	// from the control-polygon edge vectors.
	d0 := s.CP1.Sub(s.P0)
	d1 := s.CP2.Sub(s.CP1)
	d2 := s.P1.Sub(s.CP2)

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	result = append(result, solveQuadraticInUnitInterval(ax, bx, d0.X)...)

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	result = append(result, solveQuadraticInUnitInterval(ay, by, d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the segment.
func (s Segment) BoundingBox() Rect {
	bbox := NewRect(s.P0, s.P1)
	for _, t := range s.Extrema() {
		p := s.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// Flatten approximates the segment with a polyline accurate to the given
// tolerance and appends the points (excluding the start point) to dst.
// Subdivision stops when the control points deviate from the chord by less
// than the tolerance.
func (s Segment) Flatten(dst []Point, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	return s.flatten(dst, tolerance, 0)
}

func (s Segment) flatten(dst []Point, tolerance float64, depth int) []Point {
	const maxDepth = 16
	if depth >= maxDepth || s.flatEnough(tolerance) {
		return append(dst, s.P1)
	}
	left, right := s.Subdivide()
	dst = left.flatten(dst, tolerance, depth+1)
	return right.flatten(dst, tolerance, depth+1)
}

// flatEnough reports whether both control points lie within tolerance of
// the chord from P0 to P1.
func (s Segment) flatEnough(tolerance float64) bool {
	chord := s.P1.Sub(s.P0)
	length := chord.Length()
	if length < epsilon {
		return s.CP1.Distance(s.P0) < tolerance && s.CP2.Distance(s.P0) < tolerance
	}
	d1 := math.Abs(chord.Cross(s.CP1.Sub(s.P0))) / length
	d2 := math.Abs(chord.Cross(s.CP2.Sub(s.P0))) / length
	return d1 < tolerance && d2 < tolerance
}

// Bounds returns the tight axis-aligned bounding box of an entire fitted
// curve. The zero Rect is returned for an empty segment list.
func Bounds(segs []Segment) Rect {
	if len(segs) == 0 {
		return Rect{}
	}
	bbox := segs[0].BoundingBox()
	for _, s := range segs[1:] {
		bbox = bbox.Union(s.BoundingBox())
	}
	return bbox
}

// lineSegment returns a degenerate straight segment from p0 to p1 with the
// control points on the chord thirds, i.e. no injected curvature.
func lineSegment(p0, p1 Point) Segment {
	return Segment{
		P0:  p0,
		CP1: p0.Lerp(p1, 1.0/3.0),
		CP2: p0.Lerp(p1, 2.0/3.0),
		P1:  p1,
	}
}

// EmitSegments replays a fitted curve against an externally-owned path
// builder: one MoveTo to the first start point, one CubicTo per segment, and
// a final Close when the curve is closed. An empty segment list emits
// nothing. This is the package's only point of contact with a rendering
// system; the path is owned and consumed by the caller.
func EmitSegments(pb PathBuilder, segs []Segment, closed bool) {
	if len(segs) == 0 {
		return
	}
	pb.MoveTo(segs[0].P0.X, segs[0].P0.Y)
	for _, s := range segs {
		pb.CubicTo(s.CP1.X, s.CP1.Y, s.CP2.X, s.CP2.Y, s.P1.X, s.P1.Y)
	}
	if closed {
		pb.Close()
	}
}
