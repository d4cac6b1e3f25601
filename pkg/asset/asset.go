// Package asset loads the optional rocket marker image.
//
// Loading never fails outright: Load returns a Result that is exactly one of
// Loaded, Missing or Failed, and callers pick a marker strategy per variant.
// A missing file is a normal condition. Only a file that exists but cannot be
// read or decoded is reported as Failed.
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	// Decoders for the formats a marker image may come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/yaklabco/rocketlab/pkg/fsutil"
)

// DefaultPath is where the marker image is looked up, relative to the
// working directory.
const DefaultPath = "rocket.png"

// MaxSize is the largest marker image Load will read.
const MaxSize int64 = 8 << 20

// Result is the outcome of a Load. It is a closed set: Loaded, Missing, Failed.
type Result interface {
	// Path is the path that was looked up.
	Path() string

	isResult()
}

// Loaded carries a decoded image.
type Loaded struct {
	Image  image.Image
	Format string
	path   string
}

// Missing means no image exists at the path. It is not an error.
type Missing struct {
	path string
}

// Failed means the image exists but could not be used.
type Failed struct {
	Reason string
	Err    error
	path   string
}

func (r Loaded) Path() string  { return r.path }
func (r Missing) Path() string { return r.path }
func (r Failed) Path() string  { return r.path }

func (Loaded) isResult()  {}
func (Missing) isResult() {}
func (Failed) isResult()  {}

// Error makes Failed usable as an error value.
func (r Failed) Error() string { return r.Reason }

// Unwrap exposes the underlying error.
func (r Failed) Unwrap() error { return r.Err }

// Load reads and decodes the image at path. An empty path is Missing.
func Load(ctx context.Context, path string) Result {
	if path == "" {
		return Missing{}
	}

	content, err := fsutil.ReadFile(ctx, path, MaxSize)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			return Missing{path: path}
		}
		return Failed{Reason: err.Error(), Err: err, path: path}
	}

	return Decode(path, content)
}

// Decode turns raw bytes into a Result without touching the filesystem.
func Decode(path string, content []byte) Result {
	img, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		wrapped := fmt.Errorf("decode %s: %w", path, err)
		return Failed{Reason: wrapped.Error(), Err: wrapped, path: path}
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		wrapped := fmt.Errorf("decode %s: image has no pixels", path)
		return Failed{Reason: wrapped.Error(), Err: wrapped, path: path}
	}

	return Loaded{Image: img, Format: format, path: path}
}

// Describe renders a short human-readable status for logs.
func Describe(r Result) string {
	switch res := r.(type) {
	case Loaded:
		b := res.Image.Bounds()
		return fmt.Sprintf("loaded %s (%s, %dx%d)", res.path, res.Format, b.Dx(), b.Dy())
	case Missing:
		if res.path == "" {
			return "no marker image configured"
		}
		return "no marker image at " + res.path
	case Failed:
		return "failed: " + res.Reason
	default:
		return "unknown"
	}
}
