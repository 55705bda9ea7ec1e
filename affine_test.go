package spline

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
	assertNear(t, p.Transform(Translate(Vec(1, 1)).ThenScale(2, 3)), Pt(8, 15), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestFitRect(t *testing.T) {
	const epsilon = 1e-9
	dst := Rect{0, 0, 100, 50}

	// Wider than tall: limited by height.
	aff := FitRect(Rect{10, 10, 20, 30}, dst)
	assertNear(t, Pt(15, 20).Transform(aff), Pt(50, 25), epsilon)
	assertNear(t, Pt(10, 10).Transform(aff), Pt(37.5, 0), epsilon)
	assertNear(t, Pt(20, 30).Transform(aff), Pt(62.5, 50), epsilon)

	// Zero height: limited by width.
	aff = FitRect(Rect{0, 5, 10, 5}, dst)
	assertNear(t, Pt(0, 5).Transform(aff), Pt(0, 25), epsilon)
	assertNear(t, Pt(10, 5).Transform(aff), Pt(100, 25), epsilon)

	// A single point is centered.
	aff = FitRect(Rect{3, 3, 3, 3}, dst)
	assertNear(t, Pt(3, 3).Transform(aff), Pt(50, 25), epsilon)
	assertNear(t, Pt(4, 3).Transform(aff), Pt(51, 25), epsilon)
}
