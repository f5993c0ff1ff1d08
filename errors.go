package spline

import "errors"

// epsilon is the floor applied to chord lengths and knot intervals so that
// coincident fit points cannot produce a division by zero, and the threshold
// below which the cyclic solver's correction denominator counts as singular.
const epsilon = 1e-6

// ErrSingularSystem indicates that a closed-curve solve hit a numerically
// singular cyclic system (degenerate loop geometry). The builders surface it
// instead of emitting NaN control points.
var ErrSingularSystem = errors.New("spline: singular cyclic system")
