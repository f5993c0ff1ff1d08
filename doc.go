// Package spline fits smooth parametric curves through ordered 2D points
// and emits the result as cubic Bézier segments.
//
// # Overview
//
// spline is a pure Go curve-fitting library for graphics and animation
// tooling: drawing tools, motion paths, generative art — anything that has
// waypoints and wants a visually pleasing curve through them. It implements
// three classic fitting algorithms and nothing else; rendering, hit-testing
// and input handling belong to the host application.
//
//   - [Natural]: C²-continuous natural cubic spline (zero second derivative
//     at the free ends), solved with the Thomas algorithm.
//   - [Hobby]: John Hobby's METAFONT algorithm, G1-continuous with
//     per-segment tension and endpoint curl. The most "hand-drawn" look.
//   - [CatmullRom]: centripetal Catmull-Rom via the Barry-Goldman formula,
//     closed-form and local.
//
// All three support closed loops; Hobby and Natural solve a cyclic system
// via Sherman-Morrison for those.
//
// # Quick Start
//
//	import "github.com/gogpu/spline"
//
//	points := []spline.Point{{0, 0}, {50, 80}, {120, 30}, {200, 90}}
//
//	segs, err := spline.Hobby(points)
//	if err != nil {
//		// only closed curves can fail (degenerate loop geometry)
//	}
//
//	// Replay into any path builder (MoveTo/CubicTo/Close):
//	path := spline.NewPath()
//	spline.EmitSegments(path, segs, false)
//
// # Output contract
//
// Every builder returns segments whose P0/P1 endpoints are the input points,
// carried over exactly; only the control points are derived. Fewer points
// than an algorithm needs produce a well-defined degenerate result (an empty
// list, or a single straight segment for exactly two points), never a panic.
//
// # Concurrency
//
// The builders are pure functions without shared mutable state: per-call
// working buffers, read-only inputs, deterministic output. Independent calls
// may run concurrently without locking.
//
// # Coordinate System
//
// The library is coordinate-system agnostic. Turning angles are measured
// with atan2(cross, dot), so "counter-clockwise" follows the handedness of
// the caller's coordinate system (in y-down screen coordinates a positive
// turn appears clockwise on screen).
package spline
