package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/spline/sample"
)

// config holds everything needed to render one spline.
type config struct {
	Curve  sample.Curve
	Points int
	ScaleX float64 `yaml:"scaleX"`
	ScaleY float64 `yaml:"scaleY"`

	Width  int
	Height int
	// Fit scales the spline to the canvas, leaving Margin units free.
	Fit    bool
	Margin float64

	MarkerSize    float64 `yaml:"markerSize"`
	LineWidth     float64 `yaml:"lineWidth"`
	ControlPoints bool    `yaml:"controlPoints"`

	Output string
	SVG    string `yaml:"svg"`
}

func defaultConfig() config {
	return config{
		Curve:         sample.Sinus,
		Points:        10,
		ScaleX:        100,
		ScaleY:        100,
		Width:         800,
		Height:        600,
		Margin:        20,
		MarkerSize:    5,
		LineWidth:     1,
		ControlPoints: true,
		Output:        "spline.png",
	}
}

func (c *config) validate() error {
	if err := sample.Validate(c.Points, c.ScaleX, c.ScaleY); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.Output == "" && c.SVG == "" {
		return errors.New("no output file")
	}
	return nil
}

// readConfigFile decodes filename on top of c. Fields missing from the file
// keep their values.
func readConfigFile(filename string, c *config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	return nil
}
