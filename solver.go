package spline

import (
	"log/slog"
	"math"
)

// Linear-system solvers for the curve builders.
//
// The natural spline and Hobby builders both reduce to banded linear systems:
// a tridiagonal system for open curves, and a tridiagonal system with two
// wrap-around corner entries for closed curves. Both are solved directly
// (no iteration, no pivoting); the builders' formulations are diagonally
// dominant, which makes the plain forward sweep numerically safe.

// SolveTridiagonal solves a tridiagonal linear system A·x = d using the
// Thomas algorithm in O(n).
//
// The system rows are given as four equal-length slices: a is the
// sub-diagonal, b the diagonal, c the super-diagonal and d the right-hand
// side. a[0] and c[n-1] are outside the band and ignored. The caller's
// slices are never modified; the sweep runs on private copies of b and d.
//
// The matrix must be diagonally dominant — no pivoting is performed.
// An empty system yields an empty solution.
func SolveTridiagonal(a, b, c, d []float64) []float64 {
	n := len(d)
	if n == 0 {
		return nil
	}

	cp := make([]float64, n) // modified diagonal
	dp := make([]float64, n) // modified right-hand side
	copy(cp, b)
	copy(dp, d)

	// Forward sweep: eliminate the sub-diagonal.
	for i := 1; i < n; i++ {
		m := a[i] / cp[i-1]
		cp[i] -= m * c[i-1]
		dp[i] -= m * dp[i-1]
	}

	// Back substitution.
	x := make([]float64, n)
	x[n-1] = dp[n-1] / cp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (dp[i] - c[i]*x[i+1]) / cp[i]
	}
	return x
}

// SolveCyclic solves a wrap-around tridiagonal system, i.e. a tridiagonal
// system where row 0 additionally references the last unknown and the last
// row references the first. Such systems arise from closed curves.
//
// The wrap coefficients occupy the two band slots that a plain tridiagonal
// system leaves unused: a[0] is row 0's coefficient for x[n-1] and c[n-1]
// is row n-1's coefficient for x[0].
//
// The corner entries are removed as a rank-1 perturbation and corrected via
// the Sherman-Morrison formula, which costs two Thomas solves and is exact.
// If the correction denominator vanishes the matrix is singular and
// ErrSingularSystem is returned; the solver never divides by a near-zero
// value to produce NaN output.
func SolveCyclic(a, b, c, d []float64) ([]float64, error) {
	n := len(d)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		// Degenerate 1x1 system: the wrap entries fold into the diagonal.
		bb := b[0] + a[0] + c[0]
		if math.Abs(bb) < epsilon {
			return nil, ErrSingularSystem
		}
		return []float64{d[0] / bb}, nil
	}

	s := a[0]
	t := c[n-1]

	// Strip the corners and compensate the diagonal so that the remaining
	// matrix plus the rank-1 update u·vᵀ reproduces the original system,
	// with u = e0 + e(n-1) and v = t·e0 + s·e(n-1).
	ap := make([]float64, n)
	bp := make([]float64, n)
	cp := make([]float64, n)
	copy(ap, a)
	copy(bp, b)
	copy(cp, c)
	ap[0] = 0
	cp[n-1] = 0
	bp[0] -= t
	bp[n-1] -= s

	x1 := SolveTridiagonal(ap, bp, cp, d)

	u := make([]float64, n)
	u[0] = 1
	u[n-1] = 1
	x2 := SolveTridiagonal(ap, bp, cp, u)

	den := 1 + t*x2[0] + s*x2[n-1]
	if math.Abs(den) < epsilon {
		Logger().Warn("cyclic system is singular", slog.Int("n", n), slog.Float64("denominator", den))
		return nil, ErrSingularSystem
	}
	factor := (t*x1[0] + s*x1[n-1]) / den

	x := make([]float64, n)
	for i := range x {
		x[i] = x1[i] - factor*x2[i]
	}
	return x, nil
}

// solveQuadraticInUnitInterval returns the real roots of ax² + bx + c = 0
// that lie in [0, 1]. Used for locating Bézier extrema.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12

	var roots []float64
	if math.Abs(a) < eps {
		// Linear equation.
		if math.Abs(b) >= eps {
			roots = []float64{-c / b}
		}
	} else {
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
			return nil
		case disc == 0:
			roots = []float64{-0.5 * b / a}
		default:
			// Numerically stable formula avoiding cancellation.
			q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
			roots = []float64{q / a, c / q}
		}
	}

	result := roots[:0]
	for _, r := range roots {
		if r >= -eps && r <= 1+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
