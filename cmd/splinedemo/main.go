// Command splinedemo samples a curve, fits a smooth Bézier spline through the
// samples, and draws the result, including knots and control points, to a PNG
// and optionally an SVG file.
//
// Flags override values from the YAML file given with -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"honnef.co/go/spline"
	"honnef.co/go/spline/render"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("splinedemo: %v", err)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg := defaultConfig()
	var (
		configFile string
		verbose    bool
	)

	fs := flag.NewFlagSet("splinedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configFile, "config", "", "YAML config `file`")
	fs.BoolVar(&verbose, "v", false, "enable debug logging")
	fs.TextVar(&cfg.Curve, "curve", cfg.Curve, "curve to sample: sinus, runge, or arc")
	fs.IntVar(&cfg.Points, "points", cfg.Points, "number of knots")
	fs.Float64Var(&cfg.ScaleX, "scalex", cfg.ScaleX, "x scale, at least 1")
	fs.Float64Var(&cfg.ScaleY, "scaley", cfg.ScaleY, "y scale, at least 1")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.BoolVar(&cfg.Fit, "fit", cfg.Fit, "scale the spline to the image")
	fs.Float64Var(&cfg.Margin, "margin", cfg.Margin, "margin used by -fit")
	fs.Float64Var(&cfg.MarkerSize, "marker", cfg.MarkerSize, "marker size, 0 disables markers")
	fs.Float64Var(&cfg.LineWidth, "linewidth", cfg.LineWidth, "spline stroke width")
	fs.BoolVar(&cfg.ControlPoints, "controlpoints", cfg.ControlPoints, "draw control points")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "PNG output `file`, empty to disable")
	fs.StringVar(&cfg.SVG, "svg", cfg.SVG, "SVG output `file`")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if configFile != "" {
		if err := readConfigFile(configFile, &cfg); err != nil {
			return err
		}
		// Parse again so that explicit flags win over the file.
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	if verbose {
		spline.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer spline.SetLogger(nil)
	}
	return draw(cfg)
}

func draw(cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	knots, err := cfg.Curve.Points(cfg.Points, cfg.ScaleX, cfg.ScaleY)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.MarkerSize = cfg.MarkerSize
	opts.LineWidth = cfg.LineWidth
	opts.ControlPoints = cfg.ControlPoints
	if cfg.Fit {
		opts.Transform, err = render.Fit(knots, cfg.Width, cfg.Height, cfg.Margin)
		if err != nil {
			return err
		}
	}
	logger := spline.Logger()

	if cfg.Output != "" {
		dc := gg.NewContext(cfg.Width, cfg.Height)
		defer dc.Close()
		dc.ClearWithColor(gg.White)
		if err := render.Draw(dc, knots, opts); err != nil {
			return err
		}
		if err := dc.SavePNG(cfg.Output); err != nil {
			return err
		}
		logger.Info("wrote PNG", "file", cfg.Output, "curve", cfg.Curve, "knots", len(knots))
	}

	if cfg.SVG != "" {
		f, err := os.Create(cfg.SVG)
		if err != nil {
			return err
		}
		if err := render.WriteSVG(f, knots, cfg.Width, cfg.Height, opts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote SVG", "file", cfg.SVG, "curve", cfg.Curve, "knots", len(knots))
	}
	return nil
}
