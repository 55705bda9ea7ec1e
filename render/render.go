// Package render draws Bézier splines and their knots and control points.
//
// Drawing targets a [Canvas], which is implemented by *gg.Context from
// github.com/gogpu/gg.
package render

import (
	"image/color"

	"github.com/gogpu/gg"

	"honnef.co/go/spline"
)

// Canvas is the subset of a gg drawing context used for rendering.
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)

// Colors used by [Draw].
var (
	KnotColor   color.Color = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	CurveColor  color.Color = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	FirstColor  color.Color = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	SecondColor color.Color = color.NRGBA{0x00, 0x80, 0x00, 0xff}
)

type Options struct {
	// MarkerSize is the width of knot and control point markers, in canvas
	// units. Markers aren't affected by Transform. Zero disables markers.
	MarkerSize float64
	// LineWidth is the width of the spline's stroke.
	LineWidth float64
	// ControlPoints enables markers for control points.
	ControlPoints bool
	// Transform maps spline coordinates to canvas coordinates.
	Transform spline.Affine
}

// DefaultOptions returns 5 unit markers, a 1 unit wide stroke, visible control
// points, and the identity transform.
func DefaultOptions() Options {
	return Options{
		MarkerSize:    5,
		LineWidth:     1,
		ControlPoints: true,
		Transform:     spline.Identity,
	}
}

// Draw draws the spline through knots onto dc. Knots are drawn as black
// squares, the spline as a red line, first control points as blue dots, and
// second control points as green dots.
//
// Fewer than two knots draw nothing. Errors from computing the spline or from
// the canvas are returned as is.
func Draw(dc Canvas, knots []spline.Point, opts Options) error {
	if len(knots) < 2 {
		return nil
	}
	path, err := spline.Path(knots)
	if err != nil {
		return err
	}
	path = path.Transform(opts.Transform)
	spline.Logger().Debug("drawing spline", "knots", len(knots), "elements", len(path))

	half := opts.MarkerSize / 2
	if opts.MarkerSize > 0 {
		dc.SetColor(KnotColor)
		for _, k := range knots {
			k = k.Transform(opts.Transform)
			dc.DrawRectangle(k.X-half, k.Y-half, opts.MarkerSize, opts.MarkerSize)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	dc.SetColor(CurveColor)
	dc.SetLineWidth(opts.LineWidth)
	for _, el := range path {
		switch el.Kind {
		case spline.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case spline.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		default:
			panic("unreachable")
		}
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	if opts.MarkerSize <= 0 || !opts.ControlPoints {
		return nil
	}
	// The spline's path holds exactly one CubicTo per segment.
	for _, col := range []struct {
		c     color.Color
		first bool
	}{{FirstColor, true}, {SecondColor, false}} {
		dc.SetColor(col.c)
		for _, el := range path[1:] {
			pt := el.P1
			if col.first {
				pt = el.P0
			}
			dc.DrawCircle(pt.X, pt.Y, half)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// Fit returns a transform that maps the spline through knots into a canvas of
// the given size, leaving margin units free on every side. The spline's control
// points are included in the fitted area.
func Fit(knots []spline.Point, width, height int, margin float64) (spline.Affine, error) {
	path, err := spline.Path(knots)
	if err != nil {
		return spline.Affine{}, err
	}
	dst := spline.Rect{X1: float64(width), Y1: float64(height)}.Inflate(-margin, -margin)
	return spline.FitRect(path.ControlBox(), dst), nil
}
