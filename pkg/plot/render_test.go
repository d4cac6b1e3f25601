package plot_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rocketlab/pkg/asset"
	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
	"github.com/yaklabco/rocketlab/pkg/plot"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeFrame(t *testing.T, frame *plot.Frame) *image.RGBA {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(frame.PNG))
	require.NoError(t, err)

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
			for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
				rgba.Set(x, y, img.At(x, y))
			}
		}
	}
	return rgba
}

func TestRender_GlyphAtPeak(t *testing.T) {
	t.Parallel()

	opts := plot.DefaultOptions()
	l := launch.New(height.Default(), 6)

	frame, err := plot.Render(context.Background(), opts, l, plot.GlyphMarker{Size: opts.GlyphSize, Color: plot.GlyphColor})
	require.NoError(t, err)

	assert.Equal(t, plot.Point{X: 6, Y: 20}, frame.Data)
	assert.Equal(t, plot.KindGlyph, frame.Marker)
	assert.Equal(t, "20.0 ft", frame.Label)
	assert.True(t, frame.Pixel.In(frame.Canvas), "marker %v inside canvas %v", frame.Pixel, frame.Canvas)

	img := decodeFrame(t, frame)
	assert.Equal(t, opts.Width, img.Bounds().Dx())
	assert.Equal(t, opts.Height, img.Bounds().Dy())
	assert.Equal(t, plot.GlyphColor, img.RGBAAt(frame.Pixel.X, frame.Pixel.Y))
}

func TestRender_ImageMarker(t *testing.T) {
	t.Parallel()

	opts := plot.DefaultOptions()
	l := launch.New(height.Default(), 4)

	frame, err := plot.Render(context.Background(), opts, l, plot.ImageMarker{Image: uniform(200, 200, markerBlue), Zoom: 0.1})
	require.NoError(t, err)

	assert.Equal(t, plot.KindImage, frame.Marker)
	assert.InDelta(t, 18.0, frame.Data.Y, 1e-9)

	img := decodeFrame(t, frame)
	assertNear(t, markerBlue, img.RGBAAt(frame.Pixel.X, frame.Pixel.Y))
}

func TestRender_GroundLevelLaunch(t *testing.T) {
	t.Parallel()

	opts := plot.DefaultOptions()
	l := launch.New(height.Default(), 12)

	frame, err := plot.Render(context.Background(), opts, l, nil)
	require.NoError(t, err)

	assert.Equal(t, plot.KindGlyph, frame.Marker)
	assert.Equal(t, "2.0 ft", frame.Label)
	assert.Equal(t, frame.Canvas.Max.X, frame.Pixel.X, "x=12 sits on the right edge")
}

func TestRender_MissingAssetFallsBackToGlyph(t *testing.T) {
	t.Parallel()

	opts := plot.DefaultOptions()
	res := asset.Load(context.Background(), filepath.Join(t.TempDir(), "rocket.png"))

	marker, warning := plot.SelectMarker(res, opts)
	assert.Empty(t, warning)

	frame, err := plot.Render(context.Background(), opts, launch.New(height.Default(), 6), marker)
	require.NoError(t, err)
	assert.Equal(t, plot.KindGlyph, frame.Marker)
}

func TestRender_CorruptAssetWarns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rocket.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	opts := plot.DefaultOptions()
	marker, warning := plot.SelectMarker(asset.Load(context.Background(), path), opts)
	assert.Contains(t, warning, "Could not load rocket image")

	frame, err := plot.Render(context.Background(), opts, launch.New(height.Default(), 3), marker)
	require.NoError(t, err)
	assert.Equal(t, plot.KindGlyph, frame.Marker)
	assert.NotEmpty(t, frame.PNG)
}

func TestRender_InvalidOptions(t *testing.T) {
	t.Parallel()

	opts := plot.DefaultOptions()
	opts.XMax = opts.XMin

	_, err := plot.Render(context.Background(), opts, launch.New(height.Default(), 6), nil)
	require.ErrorIs(t, err, plot.ErrInvalidOptions)
}

func TestRender_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := plot.Render(ctx, plot.DefaultOptions(), launch.New(height.Default(), 6), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProject(t *testing.T) {
	t.Parallel()

	opts := plot.DefaultOptions()
	canvas := image.Rect(100, 50, 700, 550)

	tests := []struct {
		name string
		in   plot.Point
		want image.Point
	}{
		{name: "origin", in: plot.Point{X: 0, Y: 0}, want: image.Pt(100, 550)},
		{name: "top right", in: plot.Point{X: 12, Y: 25}, want: image.Pt(700, 50)},
		{name: "peak", in: plot.Point{X: 6, Y: 20}, want: image.Pt(400, 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, plot.Project(opts, canvas, tt.in))
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, plot.DefaultOptions().Validate())

	mutations := map[string]func(*plot.Options){
		"zero width":   func(o *plot.Options) { o.Width = 0 },
		"inverted y":   func(o *plot.Options) { o.YMin, o.YMax = 25, 0 },
		"zero zoom":    func(o *plot.Options) { o.Zoom = 0 },
		"no glyph":     func(o *plot.Options) { o.GlyphSize = -1 },
		"empty x span": func(o *plot.Options) { o.XMax = 0 },
		"infinite y":   func(o *plot.Options) { o.YMax = math.Inf(1) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opts := plot.DefaultOptions()
			mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), plot.ErrInvalidOptions)
		})
	}
}
