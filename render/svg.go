package render

import (
	"fmt"
	"image/color"
	"io"

	"honnef.co/go/spline"
)

// WriteSVG writes a standalone SVG document of the given size to w, showing the
// same picture [Draw] would draw.
func WriteSVG(w io.Writer, knots []spline.Point, width, height int, opts Options) error {
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	if len(knots) >= 2 {
		path, perr := spline.Path(knots)
		if perr != nil {
			return perr
		}
		path = path.Transform(opts.Transform)
		half := opts.MarkerSize / 2
		if opts.MarkerSize > 0 {
			for _, k := range knots {
				k = k.Transform(opts.Transform)
				printf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
					k.X-half, k.Y-half, opts.MarkerSize, opts.MarkerSize, hex(KnotColor))
			}
		}

		d := path.SVG(spline.SVGOptions{MaxPrecision: 3})
		printf(`<path d="%s" fill="none" stroke="%s" stroke-width="%g"/>`+"\n", d, hex(CurveColor), opts.LineWidth)

		if opts.MarkerSize > 0 && opts.ControlPoints {
			for seg := range path.Cubics() {
				printf(`<circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", seg.P1.X, seg.P1.Y, half, hex(FirstColor))
			}
			for seg := range path.Cubics() {
				printf(`<circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", seg.P2.X, seg.P2.Y, half, hex(SecondColor))
			}
		}
	}
	printf("</svg>\n")
	return err
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
