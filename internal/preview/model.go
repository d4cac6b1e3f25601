// Package preview is a terminal rendition of the launch slider.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/rocketlab/internal/ui/pretty"
	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
)

const (
	title        = "Baking Soda + Vinegar Rocket!"
	defaultGauge = 40
	maxGauge     = 60
	trackCell    = "─"
	trackKnob    = "●"
)

// Options configures the preview.
type Options struct {
	Model height.Model
	Input launch.Input

	// YMax is the height that fills the gauge; the chart's y max.
	YMax float64

	// Color enables styled output.
	Color bool
}

// Model is the bubbletea model. Every key press produces a fresh Launch.
type Model struct {
	opts    Options
	keys    KeyMap
	styles  *pretty.Styles
	gauge   progress.Model
	help    help.Model
	current launch.Launch
	done    bool
}

// New returns a Model positioned at the slider default.
func New(opts Options) Model {
	if opts.YMax <= 0 {
		opts.YMax = opts.Model.MaxHeight
	}

	gauge := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(defaultGauge),
		progress.WithoutPercentage(),
	)

	return Model{
		opts:    opts,
		keys:    DefaultKeyMap(),
		styles:  pretty.NewStyles(opts.Color),
		gauge:   gauge,
		help:    help.New(),
		current: launch.New(opts.Model, opts.Input.Default),
	}
}

// Launch returns the launch currently shown.
func (m Model) Launch() launch.Launch {
	return m.current
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.gauge.Width = min(max(msg.Width-20, 10), maxGauge)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		soda := m.current.SodaAmount
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Less):
			soda = m.opts.Input.Move(soda, -1)
		case key.Matches(msg, m.keys.More):
			soda = m.opts.Input.Move(soda, 1)
		case key.Matches(msg, m.keys.Min):
			soda = m.opts.Input.Min
		case key.Matches(msg, m.keys.Max):
			soda = m.opts.Input.Max
		case key.Matches(msg, m.keys.Reset):
			soda = m.opts.Input.Default
		default:
			return m, nil
		}
		m.current = launch.New(m.opts.Model, soda)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.SummaryTitle.Render(title))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  Soda    %s  %s\n",
		m.track(),
		m.styles.Soda.Render(m.current.SodaLabel()+" tsp"),
	)
	fmt.Fprintf(&b, "  Height  %s  %s\n\n",
		m.gauge.ViewAs(m.ratio()),
		m.styles.Height.Render(m.current.HeightLabel()),
	)

	b.WriteString("  " + m.styles.FormatLaunch(m.current))
	b.WriteString("\n\n")
	b.WriteString("  " + m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// ratio is the gauge fill in [0, 1].
func (m Model) ratio() float64 {
	r := m.current.Height / m.opts.YMax
	return min(max(r, 0), 1)
}

// track draws the slider with a knob at the current step.
func (m Model) track() string {
	steps := m.opts.Input.Steps()
	if len(steps) == 0 {
		return ""
	}

	var b strings.Builder
	for _, s := range steps {
		if s == m.current.SodaAmount {
			b.WriteString(m.styles.Peak.Render(trackKnob))
			continue
		}
		b.WriteString(m.styles.Dim.Render(trackCell))
	}
	return b.String()
}
