package pretty

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/rocketlab/pkg/launch"
)

// Table formatting constants.
const (
	barSymbol        = "█"
	peakSymbol       = "*"
	tablePadding     = 2
	tableColumnCount = 3 // SODA, HEIGHT, BAR
	markColumnWidth  = 2
	sodaColumnWidth  = 8
	heightWidth      = 9
	minBarWidth      = 10
	maxBarWidth      = 60
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the sweep table.
type TableRow struct {
	Soda   string
	Height string
	Ratio  float64
	Peak   bool
	Ground bool
}

// TableFormatter formats sweeps as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats launches as a table with a bar per row scaled to yMax.
func (t *TableFormatter) FormatTable(launches []launch.Launch, yMax float64) string {
	rows := Rows(launches, yMax)
	if len(rows) == 0 {
		return ""
	}

	barWidth := t.barWidth()

	var builder strings.Builder

	builder.WriteString(t.formatHeader(barWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(barWidth, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, barWidth))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(barWidth, lightSeparator))
	builder.WriteString("\n")
	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// Rows converts launches to table rows. The first highest launch is marked
// as the peak.
func Rows(launches []launch.Launch, yMax float64) []TableRow {
	peak, ok := launch.Peak(launches)
	if !ok {
		return nil
	}

	rows := make([]TableRow, 0, len(launches))
	peakMarked := false
	for _, l := range launches {
		ratio := 0.0
		if yMax > 0 {
			ratio = math.Max(0, math.Min(1, l.Height/yMax))
		}
		isPeak := !peakMarked && l == peak
		if isPeak {
			peakMarked = true
		}
		rows = append(rows, TableRow{
			Soda:   l.SodaLabel() + " tsp",
			Height: l.HeightLabel(),
			Ratio:  ratio,
			Peak:   isPeak,
			Ground: l.Height == 0,
		})
	}
	return rows
}

func (t *TableFormatter) barWidth() int {
	available := t.termWidth - markColumnWidth - sodaColumnWidth - heightWidth - tablePadding*tableColumnCount
	return max(minBarWidth, min(maxBarWidth, available))
}

func (t *TableFormatter) totalWidth(barWidth int) int {
	return markColumnWidth + sodaColumnWidth + heightWidth + barWidth + tablePadding*tableColumnCount
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(barWidth int) string {
	header := fmt.Sprintf("%-*s%*s  %*s  %-*s",
		markColumnWidth, "",
		sodaColumnWidth, "SODA",
		heightWidth, "HEIGHT",
		barWidth, "LAUNCH",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(barWidth int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(barWidth)))
}

// formatRow formats a single row; the bar length is proportional to height.
func (t *TableFormatter) formatRow(row TableRow, barWidth int) string {
	mark := " "
	if row.Peak {
		mark = peakSymbol
	}

	filled := int(math.Round(row.Ratio * float64(barWidth)))
	bar := t.styles.Bar.Render(strings.Repeat(barSymbol, filled))

	content := fmt.Sprintf("%-*s%*s  %*s  ",
		markColumnWidth, mark,
		sodaColumnWidth, row.Soda,
		heightWidth, row.Height,
	)

	return t.rowStyle(row).Render(content) + bar
}

func (t *TableFormatter) rowStyle(row TableRow) lipgloss.Style {
	switch {
	case row.Peak:
		return t.styles.Peak
	case row.Ground:
		return t.styles.Ground
	default:
		return lipgloss.NewStyle()
	}
}

// formatLegend formats the legend explaining the table symbols and colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(fmt.Sprintf(" Legend: %s = peak | %s = height", peakSymbol, barSymbol))
	}

	peakSample := t.styles.Peak.Render(" peak ")
	groundSample := t.styles.Ground.Render(" grounded ")
	barSample := t.styles.Bar.Render(barSymbol)

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s  %s = height", peakSample, groundSample, barSample),
	)
}
