package spline

import "iter"

// CubicBez is a cubic Bézier segment. P0 and P3 are the end points, P1 and P2
// the control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// PathElements returns the segment as a [MoveTo] followed by a [CubicTo].
func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

// Eval evaluates the segment at t, using the Bernstein form
// (1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative of the segment at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(2 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(t * t)
	return d0.Add(d1).Add(d2).Mul(3)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// ControlBox returns the smallest rectangle enclosing the end and control
// points. It encloses the curve, but isn't necessarily tight.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}
