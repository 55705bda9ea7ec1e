package spline

import "errors"

var (
	// ErrInvalidInput is returned when the input can't describe a spline, such
	// as a knot sequence with fewer than two points.
	ErrInvalidInput = errors.New("spline: invalid input")

	// ErrNumericalFailure is returned when solving a linear system encounters a
	// zero or non-finite pivot. With the coefficients used by [ControlPoints]
	// this only happens for non-finite knots.
	ErrNumericalFailure = errors.New("spline: numerical failure")
)
