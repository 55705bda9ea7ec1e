// Package spline computes smooth Bézier splines that pass through a sequence
// of points.
//
// Given N knots, [ControlPoints] returns the control points of N-1 cubic Bézier
// segments. Segment i starts at knot i, ends at knot i+1, and the composite
// curve is C¹ (and in fact C²) continuous at every interior knot. The ends use
// relaxed boundary conditions, meaning the curvature vanishes at the first and
// last knot, like in a natural cubic spline. [Segments] and [Path] return the
// same spline as [CubicBez] values and as a [BezPath], respectively.
//
// # Algorithm
//
// Requiring matching first and second derivatives at the interior knots, plus
// zero second derivatives at the ends, yields a linear system in the first
// control points. The system is tridiagonal and diagonally dominant, and is
// solved in linear time by [SolveTridiagonal], once per axis. The second
// control points then follow directly from the first ones.
//
// # Errors
//
// Fewer than two knots are rejected with [ErrInvalidInput]. Non-finite knots
// cause [ErrNumericalFailure]. Coincident knots are accepted and result in
// degenerate segments. Closed splines and prescribed end tangents aren't
// supported.
//
// # Logging
//
// The package doesn't log by default. Use [SetLogger] to route debug and
// warning records to a [log/slog.Logger].
//
// # Related packages
//
// Package [honnef.co/go/spline/sample] generates example knot sequences and
// package [honnef.co/go/spline/render] draws splines with their knots and
// control points.
//
// # Literature
//
//   - [Draw a Smooth Curve through a Set of 2D Points with Bezier Primitives] by Oleg V. Polikarpotchkin
//   - [Tridiagonal matrix algorithm]
//
// [Draw a Smooth Curve through a Set of 2D Points with Bezier Primitives]: https://www.codeproject.com/Articles/31859/Draw-a-Smooth-Curve-through-a-Set-of-2D-Points-wit
// [Tridiagonal matrix algorithm]: https://en.wikipedia.org/wiki/Tridiagonal_matrix_algorithm
package spline
