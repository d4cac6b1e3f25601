package plot

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/yaklabco/rocketlab/pkg/asset"
)

// Kind names a marker strategy.
type Kind string

// Marker kinds.
const (
	KindImage Kind = "image"
	KindGlyph Kind = "glyph"
)

// WarningPrefix starts the message surfaced when the marker image is unusable.
const WarningPrefix = "Could not load rocket image: "

// GlyphColor is the fallback triangle's fill.
var GlyphColor = color.RGBA{R: 220, G: 20, B: 20, A: 255}

// Marker draws the rocket centred on a pixel of the finished chart.
type Marker interface {
	Kind() Kind
	Draw(dst draw.Image, at image.Point)
}

// ImageMarker draws a scaled copy of the rocket image.
type ImageMarker struct {
	Image image.Image
	Zoom  float64
}

// Kind implements Marker.
func (m ImageMarker) Kind() Kind { return KindImage }

// Draw implements Marker.
func (m ImageMarker) Draw(dst draw.Image, at image.Point) {
	if m.Image == nil {
		return
	}
	src := m.Image.Bounds()
	zoom := m.Zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	w := max(1, int(math.Round(float64(src.Dx())*zoom)))
	h := max(1, int(math.Round(float64(src.Dy())*zoom)))

	rect := image.Rect(at.X-w/2, at.Y-h/2, at.X-w/2+w, at.Y-h/2+h)
	draw.CatmullRom.Scale(dst, rect, m.Image, src, draw.Over, nil)
}

// GlyphMarker draws a filled up-pointing triangle.
type GlyphMarker struct {
	Size  int
	Color color.Color
}

// Kind implements Marker.
func (m GlyphMarker) Kind() Kind { return KindGlyph }

// Draw implements Marker.
func (m GlyphMarker) Draw(dst draw.Image, at image.Point) {
	size := m.Size
	if size <= 0 {
		size = DefaultGlyphSize
	}
	fill := m.Color
	if fill == nil {
		fill = GlyphColor
	}

	bounds := dst.Bounds()
	raster := vector.NewRasterizer(bounds.Dx(), bounds.Dy())

	half := float32(size) / 2
	x := float32(at.X - bounds.Min.X)
	y := float32(at.Y - bounds.Min.Y)
	raster.MoveTo(x, y-half)
	raster.LineTo(x+half, y+half)
	raster.LineTo(x-half, y+half)
	raster.ClosePath()

	raster.Draw(dst, bounds, image.NewUniform(fill), image.Point{})
}

// SelectMarker picks the marker for an asset load result. A Failed result
// falls back to the glyph and returns a warning for the user; Missing falls
// back silently.
func SelectMarker(res asset.Result, opts Options) (Marker, string) {
	glyph := GlyphMarker{Size: opts.GlyphSize, Color: GlyphColor}

	switch r := res.(type) {
	case asset.Loaded:
		return ImageMarker{Image: r.Image, Zoom: opts.Zoom}, ""
	case asset.Failed:
		return glyph, WarningPrefix + r.Reason
	default:
		return glyph, ""
	}
}
