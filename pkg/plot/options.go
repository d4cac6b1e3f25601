// Package plot renders a launch as a PNG chart: fixed axes, a ground line,
// a rocket marker at (soda, height) and the height annotation beside it.
//
// Axes, title and ground line are drawn by go-chart. The marker and its label
// are composited onto the rendered image afterwards, because the marker may be
// an arbitrary raster image.
package plot

import (
	"errors"
	"fmt"
	"math"
)

// Default chart dimensions and bounds.
const (
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultXMin      = 0.0
	DefaultXMax      = 12.0
	DefaultYMin      = 0.0
	DefaultYMax      = 25.0
	DefaultZoom      = 0.1
	DefaultGlyphSize = 18

	// LabelOffset is the x distance (data units) between marker and label.
	LabelOffset = 0.3
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid chart options")

// Options configures a chart render. Bounds are fixed; the chart never
// rescales to fit the data.
type Options struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	XMin float64 `yaml:"x_min" json:"x_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	YMin float64 `yaml:"y_min" json:"y_min"`
	YMax float64 `yaml:"y_max" json:"y_max"`

	Title  string `yaml:"title" json:"title"`
	XLabel string `yaml:"x_label" json:"x_label"`
	YLabel string `yaml:"y_label" json:"y_label"`

	// Zoom scales an image marker relative to its natural size.
	Zoom float64 `yaml:"zoom" json:"zoom"`

	// GlyphSize is the edge length in pixels of the fallback triangle.
	GlyphSize int `yaml:"glyph_size" json:"glyph_size"`
}

// DefaultOptions returns a 640x480 chart over x [0,12], y [0,25].
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		XMin:      DefaultXMin,
		XMax:      DefaultXMax,
		YMin:      DefaultYMin,
		YMax:      DefaultYMax,
		Title:     "Rocket Launch Simulation",
		XLabel:    "Baking Soda (tsp)",
		YLabel:    "Rocket Height (feet)",
		Zoom:      DefaultZoom,
		GlyphSize: DefaultGlyphSize,
	}
}

// Validate checks the options can produce a chart.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case !finite(o.XMin, o.XMax, o.YMin, o.YMax):
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidOptions)
	case math.IsNaN(o.XMin) || math.IsNaN(o.XMax) || o.XMin >= o.XMax:
		return fmt.Errorf("%w: x range [%g, %g] is empty", ErrInvalidOptions, o.XMin, o.XMax)
	case math.IsNaN(o.YMin) || math.IsNaN(o.YMax) || o.YMin >= o.YMax:
		return fmt.Errorf("%w: y range [%g, %g] is empty", ErrInvalidOptions, o.YMin, o.YMax)
	case o.Zoom <= 0:
		return fmt.Errorf("%w: zoom must be > 0, got %g", ErrInvalidOptions, o.Zoom)
	case o.GlyphSize <= 0:
		return fmt.Errorf("%w: glyph size must be > 0, got %d", ErrInvalidOptions, o.GlyphSize)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// tickStep picks a round step giving roughly five to ten ticks over span.
func tickStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / 6
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * magnitude; step >= raw {
			return step
		}
	}
	return 10 * magnitude
}
