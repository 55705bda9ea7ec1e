package spline

import "fmt"

// ControlPoints computes the control points of a smooth Bézier spline that
// passes through all knots.
//
// The spline consists of len(knots)-1 cubic Bézier segments. Segment i starts
// at knots[i], ends at knots[i+1], and uses first[i] and second[i] as its
// control points. Neighboring segments have matching first derivatives at their
// shared knot, so the spline is C¹ continuous. At the two ends, the curvature
// is relaxed, similar to a natural cubic spline.
//
// At least two knots are required, otherwise an error wrapping
// [ErrInvalidInput] is returned. Non-finite knots result in an error wrapping
// [ErrNumericalFailure]. In either case, no control points are returned.
//
// Coincident knots aren't treated specially and result in degenerate segments.
func ControlPoints(knots []Point) (first, second []Point, err error) {
	if len(knots) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 knots, got %d", ErrInvalidInput, len(knots))
	}
	log := Logger()
	log.Debug("computing spline control points", "knots", len(knots))

	xs := make([]float64, len(knots))
	ys := make([]float64, len(knots))
	for i, pt := range knots {
		xs[i], ys[i] = pt.X, pt.Y
	}

	x1, x2, err := controlPointsAxis(xs)
	if err != nil {
		log.Warn("solving spline failed", "axis", "x", "err", err)
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	y1, y2, err := controlPointsAxis(ys)
	if err != nil {
		log.Warn("solving spline failed", "axis", "y", "err", err)
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}

	first = make([]Point, len(x1))
	second = make([]Point, len(x2))
	for i := range first {
		first[i] = Pt(x1[i], y1[i])
		second[i] = Pt(x2[i], y2[i])
	}
	return first, second, nil
}

// controlPointsAxis computes one coordinate of the first and second control
// points of every segment. p contains the same coordinate of all knots and
// has at least two elements.
func controlPointsAxis(p []float64) (first, second []float64, err error) {
	// n is the number of segments.
	n := len(p) - 1

	if n == 1 {
		// A single segment has no interior knots, so the control points
		// divide the straight line between the two knots into thirds.
		cp1 := (2*p[0] + p[1]) / 3
		cp2 := 2*cp1 - p[0]
		if !isFinite(cp1) || !isFinite(cp2) {
			return nil, nil, fmt.Errorf("%w: non-finite knot", ErrNumericalFailure)
		}
		return []float64{cp1}, []float64{cp2}, nil
	}

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)

	b[0] = 2
	c[0] = 1
	d[0] = p[0] + 2*p[1]
	for i := 1; i < n-1; i++ {
		a[i] = 1
		b[i] = 4
		c[i] = 1
		d[i] = 4*p[i] + 2*p[i+1]
	}
	a[n-1] = 2
	b[n-1] = 7
	d[n-1] = 8*p[n-1] + p[n]

	first, err = SolveTridiagonal(a, b, c, d)
	if err != nil {
		return nil, nil, err
	}
	Logger().Debug("solved tridiagonal system", "rows", n)

	second = make([]float64, n)
	for i := range n - 1 {
		second[i] = 2*p[i+1] - first[i+1]
	}
	second[n-1] = (p[n] + first[n-1]) / 2
	return first, second, nil
}

// Segments returns the cubic Bézier segments of the spline through knots, as
// computed by [ControlPoints].
func Segments(knots []Point) ([]CubicBez, error) {
	first, second, err := ControlPoints(knots)
	if err != nil {
		return nil, err
	}
	segs := make([]CubicBez, len(first))
	for i := range segs {
		segs[i] = CubicBez{knots[i], first[i], second[i], knots[i+1]}
	}
	return segs, nil
}

// Path returns the spline through knots as an open Bézier path, consisting of
// a [MoveTo] to the first knot followed by one [CubicTo] per segment.
func Path(knots []Point) (BezPath, error) {
	first, second, err := ControlPoints(knots)
	if err != nil {
		return nil, err
	}
	p := make(BezPath, 0, len(knots))
	p.MoveTo(knots[0])
	for i := range first {
		p.CubicTo(first[i], second[i], knots[i+1])
	}
	return p, nil
}
