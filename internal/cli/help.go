package cli

import (
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/configloader"
	"github.com/yaklabco/rocketlab/internal/ui/pretty"
)

// helpStyles colors the parts of command help.
type helpStyles struct {
	Heading lipgloss.Style
	Command lipgloss.Style
	Flag    lipgloss.Style
	Dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{Heading: plain, Command: plain, Flag: plain, Dim: plain}
	}
	return helpStyles{
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Every rocketlab command explains its examples in Long, so the template
// has no alias or example sections.
const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]

{{ heading "Commands:" }}{{range .Commands}}{{if .IsAvailableCommand}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}
{{- if not .HasParent}}

{{ heading "Environment:" }}
{{ envVars }}
{{- end}}
{{- if .HasAvailableSubCommands}}

Run "{{ command (print .CommandPath " [command] --help") }}" for details on a command.
{{- end}}
`

// applyHelp installs the styled help and usage output on root. Color is
// resolved per call from the --color flag and the command's writer.
func applyHelp(root *cobra.Command) {
	render := func(cmd *cobra.Command) error {
		mode, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			mode = "auto"
		}
		styles := newHelpStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))

		tmpl, err := template.New("help").Funcs(helpFuncs(styles)).Parse(helpTemplate)
		if err != nil {
			return err
		}
		return tmpl.Execute(cmd.OutOrStdout(), cmd)
	}

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if err := render(cmd); err != nil {
			cmd.PrintErrln(err)
		}
	})
	root.SetUsageFunc(render)
}

func helpFuncs(styles helpStyles) template.FuncMap {
	return template.FuncMap{
		"heading":   styles.Heading.Render,
		"command":   styles.Command.Render,
		"rpad":      rpad,
		"trimRight": func(s string) string { return strings.TrimRight(s, " \t\n") },
		"flags":     func(usages string) string { return styleFlags(styles, usages) },
		"envVars":   func() string { return envVarsUsage(styles) },
	}
}

// styleFlags colors the flag names in pflag's aligned usage block, keeping
// its column layout.
func styleFlags(styles helpStyles, usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]

		names, desc, found := strings.Cut(body, "  ")
		if !found {
			continue
		}
		gap := "  " + desc[:len(desc)-len(strings.TrimLeft(desc, " "))]

		var styled []string
		for _, tok := range strings.Fields(names) {
			if strings.HasPrefix(tok, "-") {
				styled = append(styled, styles.Flag.Render(tok))
			} else {
				styled = append(styled, styles.Dim.Render(tok))
			}
		}
		lines[i] = indent + strings.Join(styled, " ") + gap + strings.TrimLeft(desc, " ")
	}
	return strings.Join(lines, "\n")
}

// envVarsUsage lists the ROCKETLAB_* overrides, sorted by name.
func envVarsUsage(styles helpStyles) string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+styles.Flag.Render(rpad(name, width))+"   "+vars[name])
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
