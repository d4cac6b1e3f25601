package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
)

const (
	summaryDividerWidth = 40
	wordLaunch          = "launch"
	wordLaunches        = "launches"
)

// FormatLaunch renders the summary sentence with both quantities styled.
// Example: "You've added 6 tsp of baking soda. The rocket reached about 20.0 ft!".
func (s *Styles) FormatLaunch(l launch.Launch) string {
	return fmt.Sprintf("You've added %s of baking soda. The rocket reached about %s!",
		s.Soda.Render(l.SodaLabel()+" tsp"),
		s.Height.Render(fmt.Sprintf("%.1f ft", l.Height)),
	)
}

// FormatWarning renders a non-fatal problem on one line.
func (s *Styles) FormatWarning(msg string) string {
	return s.Warning.Render("warning:") + " " + msg
}

// FormatSweepOneLine formats sweep statistics as a single line.
// Example: "13 launches, peak 20.0 ft at 6 tsp, 0 grounded".
func (s *Styles) FormatSweepOneLine(launches []launch.Launch) string {
	peak, ok := launch.Peak(launches)
	if !ok {
		return s.Dim.Render("No launches") + "\n"
	}

	word := wordLaunches
	if len(launches) == 1 {
		word = wordLaunch
	}

	parts := []string{
		fmt.Sprintf("%d %s", len(launches), word),
		s.Peak.Render(fmt.Sprintf("peak %s at %s tsp", peak.HeightLabel(), peak.SodaLabel())),
		s.Ground.Render(fmt.Sprintf("%d grounded", countGrounded(launches))),
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatModel formats the curve parameters as a summary block.
func (s *Styles) FormatModel(m height.Model) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Model"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Curvature:   " + s.SummaryValue.Render(fmt.Sprintf("%g", m.Curvature)) + "\n")
	builder.WriteString("  Optimal:     " + s.SummaryValue.Render(fmt.Sprintf("%g tsp", m.Optimal)) + "\n")
	builder.WriteString("  Max height:  " + s.SummaryValue.Render(fmt.Sprintf("%g ft", m.MaxHeight)) + "\n")
	if offset := m.RootOffset(); offset > 0 {
		builder.WriteString("  Lift range:  " + s.SummaryValue.Render(
			fmt.Sprintf("%.2f to %.2f tsp", m.Optimal-offset, m.Optimal+offset)) + "\n")
	}

	return builder.String()
}

func countGrounded(launches []launch.Launch) int {
	var n int
	for _, l := range launches {
		if l.Height == 0 {
			n++
		}
	}
	return n
}
