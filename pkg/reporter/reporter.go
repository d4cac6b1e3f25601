// Package reporter formats launch sweeps for terminal and machine output.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
)

// Result is an evaluated sweep across the slider.
type Result struct {
	Model    height.Model
	Input    launch.Input
	Launches []launch.Launch
}

// NewResult evaluates every slider position of input through model.
func NewResult(model height.Model, input launch.Input) *Result {
	return &Result{
		Model:    model,
		Input:    input,
		Launches: launch.Sweep(model, input),
	}
}

// Reporter formats and writes sweep results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of launches reported and any write errors.
	Report(ctx context.Context, result *Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func launchCount(result *Result) int {
	if result == nil {
		return 0
	}
	return len(result.Launches)
}
