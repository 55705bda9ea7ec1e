// Package sample generates knot sequences by sampling simple parametric
// functions. The sequences make good input for [spline.ControlPoints].
package sample

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/spline"
)

// Curve names one of the sampled functions.
type Curve int

const (
	// Sinus samples 1 − sin(x) for x ∈ [0, 2π].
	Sinus Curve = iota
	// Runge samples 1 − 1/(1 + 25x²) for x ∈ [-1, 1].
	Runge
	// Arc samples the unit circle from 0° to 270°.
	Arc
)

var curveNames = [...]string{
	Sinus: "sinus",
	Runge: "runge",
	Arc:   "arc",
}

func (c Curve) String() string {
	if c < 0 || int(c) >= len(curveNames) {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// ParseCurve returns the curve with the given name. Names are matched
// case-insensitively.
func ParseCurve(name string) (Curve, error) {
	for i, n := range curveNames {
		if strings.EqualFold(n, name) {
			return Curve(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown curve %q", spline.ErrInvalidInput, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(curveNames) {
		return nil, fmt.Errorf("%w: unknown curve %d", spline.ErrInvalidInput, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(b []byte) error {
	v, err := ParseCurve(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Points samples the curve at n evenly spaced parameter values, scaling x by sx
// and y by sy. See [Validate] for the accepted arguments.
func (c Curve) Points(n int, sx, sy float64) ([]spline.Point, error) {
	if err := Validate(n, sx, sy); err != nil {
		return nil, err
	}
	switch c {
	case Sinus:
		return sinus(n, sx, sy), nil
	case Runge:
		return runge(n, sx, sy), nil
	case Arc:
		return arc(n, sx, sy), nil
	default:
		return nil, fmt.Errorf("%w: unknown curve %d", spline.ErrInvalidInput, int(c))
	}
}

// Validate checks sampling arguments. At least two points are needed to form a
// spline, and both scales must be at least 1.
func Validate(n int, sx, sy float64) error {
	if n < 2 {
		return fmt.Errorf("%w: point count must be greater than 1, got %d", spline.ErrInvalidInput, n)
	}
	// Negated comparisons so that NaN is rejected, too.
	if !(sx >= 1) {
		return fmt.Errorf("%w: x scale must be at least 1, got %g", spline.ErrInvalidInput, sx)
	}
	if !(sy >= 1) {
		return fmt.Errorf("%w: y scale must be at least 1, got %g", spline.ErrInvalidInput, sy)
	}
	return nil
}

func sinus(n int, sx, sy float64) []spline.Point {
	pts := make([]spline.Point, n)
	step := 2 * math.Pi / float64(n-1)
	for i := range pts {
		x := float64(i) * step
		pts[i] = spline.Pt(sx*x, sy*(1-math.Sin(x)))
	}
	return pts
}

func runge(n int, sx, sy float64) []spline.Point {
	pts := make([]spline.Point, n)
	step := 2.0 / float64(n-1)
	for i := range pts {
		x := -1 + float64(i)*step
		pts[i] = spline.Pt(sx*(x+1), sy*(1-1/(1+25*x*x)))
	}
	return pts
}

func arc(n int, sx, sy float64) []spline.Point {
	pts := make([]spline.Point, n)
	step := 1.5 * math.Pi / float64(n-1)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = spline.Pt(sx*(1+cos), sy*(1+sin))
	}
	return pts
}
