package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays the peak and grounded counts after results.
	ShowSummary bool

	// ShowModel prints the curve parameters before results (text format).
	ShowModel bool

	// Compact uses minified output where applicable.
	Compact bool

	// YMax scales table bars; launches at or above it fill the bar.
	YMax float64
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
		YMax:        25,
	}
}
