package spline

// PathBuilder is the narrow capability the curve builders emit into.
// Any vector-graphics path type can adapt to it; the fitted curve is
// replayed as one MoveTo, a CubicTo per segment, and a Close for loops.
//
// The library never owns or renders the resulting path.
type PathBuilder interface {
	MoveTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// PathElement represents a single recorded path verb.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bézier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a minimal recording implementation of [PathBuilder]. It stores the
// emitted verbs so tests and adapters can replay them against a real
// rendering system.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bézier curve to (x, y) with the given control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the recorded path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Segments reconstructs the cubic segments recorded in the path, resolving
// Close verbs against the subpath start. Line verbs are returned as
// degenerate cubics with control points on the chord thirds.
func (p *Path) Segments() []Segment {
	var segs []Segment
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			p.start = e.Point
			p.current = e.Point
		case LineTo:
			segs = append(segs, lineSegment(p.current, e.Point))
			p.current = e.Point
		case CubicTo:
			segs = append(segs, Segment{P0: p.current, CP1: e.Control1, CP2: e.Control2, P1: e.Point})
			p.current = e.Point
		case Close:
			if p.current != p.start {
				segs = append(segs, lineSegment(p.current, p.start))
			}
			p.current = p.start
		}
	}
	return segs
}
