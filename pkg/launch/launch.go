// Package launch builds the per-interaction launch value: the soda amount the
// user picked paired with the height the model derives from it.
package launch

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/rocketlab/pkg/height"
)

// Launch is one evaluated slider position. Height is always derived from
// SodaAmount through the model; construct values with New.
type Launch struct {
	SodaAmount float64 `json:"soda_amount"`
	Height     float64 `json:"height"`
}

// New evaluates model at soda.
func New(model height.Model, soda float64) Launch {
	return Launch{
		SodaAmount: soda,
		Height:     model.Height(soda),
	}
}

// SodaLabel formats the soda amount in its shortest form ("6", "2.5").
func (l Launch) SodaLabel() string {
	return strconv.FormatFloat(l.SodaAmount, 'f', -1, 64)
}

// HeightLabel is the marker annotation, e.g. "20.0 ft".
func (l Launch) HeightLabel() string {
	return fmt.Sprintf("%.1f ft", l.Height)
}

// Summary is the plain-text sentence shown under the chart.
func (l Launch) Summary() string {
	return fmt.Sprintf("You've added %s tsp of baking soda. The rocket reached about %.1f ft!",
		l.SodaLabel(), l.Height)
}

// SummaryMarkdown is Summary with both quantities in bold.
func (l Launch) SummaryMarkdown() string {
	return fmt.Sprintf("You've added **%s tsp** of baking soda. The rocket reached about **%.1f ft**!",
		l.SodaLabel(), l.Height)
}

// Sweep evaluates every slider position from input.Min to input.Max.
func Sweep(model height.Model, input Input) []Launch {
	steps := input.Steps()
	launches := make([]Launch, 0, len(steps))
	for _, soda := range steps {
		launches = append(launches, New(model, soda))
	}
	return launches
}

// Peak returns the launch with the greatest height, first one wins on ties.
// The boolean is false for an empty slice.
func Peak(launches []Launch) (Launch, bool) {
	if len(launches) == 0 {
		return Launch{}, false
	}
	best := launches[0]
	for _, l := range launches[1:] {
		if l.Height > best.Height {
			best = l
		}
	}
	return best, true
}
