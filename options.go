package spline

// TensionFunc is an optional per-segment tension callback for the Hobby
// builder. It receives the segment index and the turning angles at the
// segment's start and end vertices in degrees, and returns the two tension
// factors multiplying the segment's handle lengths. Values above 1 lengthen
// the handles (looser curve), values below 1 shorten them (tighter).
//
// The callback must be deterministic: the same inputs must yield the same
// factors. A nil TensionFunc is the identity (1, 1).
type TensionFunc func(seg int, inDeg, outDeg float64) (t1, t2 float64)

// Option configures a curve builder.
// Use functional options to customize fitting behavior.
//
// Example:
//
//	// Closed Hobby loop with loose endpoints
//	segs, err := spline.Hobby(points, spline.Closed())
//
//	// Chordal Catmull-Rom
//	segs := spline.CatmullRom(points, spline.WithAlpha(1.0))
//
// Each builder documents which options it honors; options that do not apply
// to a builder are ignored.
type Option func(*curveOptions)

// curveOptions holds the merged configuration for a single builder call.
type curveOptions struct {
	closed  bool
	curl    float64
	tension TensionFunc
	alpha   float64
}

// defaultOptions returns the default curve options.
func defaultOptions() curveOptions {
	return curveOptions{
		closed: false,
		curl:   0.0,
		alpha:  0.5, // centripetal
	}
}

func applyOptions(opts []Option) curveOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Closed makes the builder produce a closed loop: the last fit point
// connects back to the first and the solve wraps around. Closed curves
// require at least 3 points; with fewer the builders return an empty
// segment list.
//
// Honored by Hobby, Natural and CatmullRom.
func Closed() Option {
	return func(o *curveOptions) {
		o.closed = true
	}
}

// WithCurl sets the endpoint curl of an open Hobby curve. Curl controls how
// strongly the curve bends at its two free ends; 0 (the default) gives the
// classic straight-ish ends, values toward 1 curl them.
//
// Honored by Hobby; ignored for closed curves, which have no endpoints.
func WithCurl(curl float64) Option {
	return func(o *curveOptions) {
		o.curl = curl
	}
}

// WithTension injects a per-segment tension callback into the Hobby builder.
// See [TensionFunc]. Passing nil restores the identity tension.
//
// Honored by Hobby.
func WithTension(fn TensionFunc) Option {
	return func(o *curveOptions) {
		o.tension = fn
	}
}

// WithAlpha sets the Catmull-Rom parameterization exponent: 0 is uniform,
// 0.5 (the default) is centripetal, 1 is chordal. Centripetal avoids the
// cusps and self-intersections uniform parameterization can produce.
//
// Honored by CatmullRom.
func WithAlpha(alpha float64) Option {
	return func(o *curveOptions) {
		o.alpha = alpha
	}
}
