package plot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/yaklabco/rocketlab/pkg/launch"
)

// Point is a position in data coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is one rendered chart.
type Frame struct {
	// PNG holds the encoded chart.
	PNG []byte

	// Data is the launch position in data coordinates.
	Data Point

	// Pixel is where the marker was centred.
	Pixel image.Point

	// Canvas is the plotting area inside the axes.
	Canvas image.Rectangle

	// Marker is the strategy that drew the rocket.
	Marker Kind

	// Label is the annotation drawn beside the marker.
	Label string
}

var (
	groundColor = drawing.Color{R: 128, G: 128, B: 128, A: 255}
	labelColor  = color.RGBA{A: 255}
)

// Render draws l onto a fresh chart and encodes it as PNG.
func Render(ctx context.Context, opts Options, l launch.Launch, marker Marker) (*Frame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if marker == nil {
		marker = GlyphMarker{Size: opts.GlyphSize, Color: GlyphColor}
	}

	var canvas chart.Box
	graph := newChart(opts, func(_ chart.Renderer, box chart.Box, _ chart.Style) {
		canvas = box
	})

	var raw bytes.Buffer
	if err := graph.Render(chart.PNG, &raw); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("render chart: %w", ctx.Err())
	default:
	}

	decoded, err := png.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	img := image.NewRGBA(decoded.Bounds())
	draw.Draw(img, img.Bounds(), decoded, decoded.Bounds().Min, draw.Src)

	frame := &Frame{
		Data:   Point{X: l.SodaAmount, Y: l.Height},
		Canvas: image.Rect(canvas.Left, canvas.Top, canvas.Right, canvas.Bottom),
		Marker: marker.Kind(),
		Label:  l.HeightLabel(),
	}
	frame.Pixel = Project(opts, frame.Canvas, frame.Data)

	marker.Draw(img, frame.Pixel)
	drawLabel(img, Project(opts, frame.Canvas, Point{X: l.SodaAmount + LabelOffset, Y: l.Height}), frame.Label)

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	frame.PNG = out.Bytes()

	return frame, nil
}

// Project maps a data point to a pixel inside canvas, using the same
// translation go-chart applies to series values.
func Project(opts Options, canvas image.Rectangle, p Point) image.Point {
	xRatio := (p.X - opts.XMin) / (opts.XMax - opts.XMin)
	yRatio := (p.Y - opts.YMin) / (opts.YMax - opts.YMin)
	return image.Point{
		X: canvas.Min.X + int(math.Round(xRatio*float64(canvas.Dx()))),
		Y: canvas.Max.Y - int(math.Round(yRatio*float64(canvas.Dy()))),
	}
}

func newChart(opts Options, capture chart.Renderable) chart.Chart {
	return chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		XAxis: chart.XAxis{
			Name:  opts.XLabel,
			Range: &chart.ContinuousRange{Min: opts.XMin, Max: opts.XMax},
			Ticks: ticks(opts.XMin, opts.XMax),
		},
		YAxis: chart.YAxis{
			Name:  opts.YLabel,
			Range: &chart.ContinuousRange{Min: opts.YMin, Max: opts.YMax},
			Ticks: ticks(opts.YMin, opts.YMax),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "ground",
				Style: chart.Style{
					StrokeColor: groundColor,
					StrokeWidth: 2,
				},
				XValues: []float64{opts.XMin, opts.XMax},
				YValues: []float64{0, 0},
			},
		},
		Elements: []chart.Renderable{capture},
	}
}

func ticks(lo, hi float64) []chart.Tick {
	step := tickStep(hi - lo)
	start := math.Ceil(lo/step) * step

	// Counted rather than accumulated: v += step stalls once step drops
	// below the float spacing at v.
	n := int(math.Floor((hi-start)/step+1e-9)) + 1
	out := make([]chart.Tick, 0, max(n, 0))
	for i := range n {
		v := start + float64(i)*step
		out = append(out, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return out
}

func drawLabel(dst draw.Image, at image.Point, text string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(at.X, at.Y-face.Metrics().Descent.Ceil()),
	}
	drawer.DrawString(text)
}
