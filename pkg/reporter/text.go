package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/rocketlab/internal/ui/pretty"
)

// TextReporter writes one summary sentence per launch.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if launchCount(result) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No launches."))
		}
		return 0, nil
	}

	if r.opts.ShowModel {
		fmt.Fprintln(r.bw, r.styles.FormatModel(result.Model))
	}

	for _, l := range result.Launches {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("report: %w", err)
		}
		fmt.Fprintln(r.bw, r.styles.FormatLaunch(l))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSweepOneLine(result.Launches))
	}

	return len(result.Launches), nil
}
