package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
)

// jsonSchemaVersion is bumped on breaking changes to JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version  string       `json:"version"`
	Model    height.Model `json:"model"`
	Input    launch.Input `json:"input"`
	Launches []JSONLaunch `json:"launches"`
	Summary  JSONSummary  `json:"summary"`
}

// JSONLaunch represents a single slider position.
type JSONLaunch struct {
	SodaAmount float64 `json:"soda_amount"`
	Height     float64 `json:"height"`
	Label      string  `json:"label"`
	Summary    string  `json:"summary"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Count    int         `json:"count"`
	Grounded int         `json:"grounded"`
	Peak     *JSONLaunch `json:"peak,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Count, nil
}

func buildJSONOutput(result *Result) *JSONOutput {
	output := &JSONOutput{
		Version:  jsonSchemaVersion,
		Launches: make([]JSONLaunch, 0),
	}

	if result == nil {
		return output
	}

	output.Model = result.Model
	output.Input = result.Input
	output.Launches = make([]JSONLaunch, 0, len(result.Launches))

	for _, l := range result.Launches {
		output.Launches = append(output.Launches, toJSONLaunch(l))
		if l.Height == 0 {
			output.Summary.Grounded++
		}
	}
	output.Summary.Count = len(output.Launches)

	if peak, ok := launch.Peak(result.Launches); ok {
		p := toJSONLaunch(peak)
		output.Summary.Peak = &p
	}

	return output
}

func toJSONLaunch(l launch.Launch) JSONLaunch {
	return JSONLaunch{
		SodaAmount: l.SodaAmount,
		Height:     l.Height,
		Label:      l.HeightLabel(),
		Summary:    l.Summary(),
	}
}
