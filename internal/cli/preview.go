package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/preview"
	"github.com/yaklabco/rocketlab/internal/ui/pretty"
	"github.com/yaklabco/rocketlab/pkg/config"
)

func newPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Try launches interactively in the terminal",
		Long: `Open a terminal view of the slider. Each key press launches a new
rocket and shows its height as a gauge against the chart's height axis.

Keys:
  ←/h  →/l    less or more baking soda
  home/end    empty or full slider
  r           reset to the default amount
  q           quit`,
		Args: noArgs,
		RunE: runPreview,
	}

	return cmd
}

func runPreview(cmd *cobra.Command, _ []string) error {
	sess, err := loadSession(cmd, &config.Config{})
	if err != nil {
		return err
	}
	cfg := sess.cfg

	out := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(string(cfg.Color), out)

	final, err := preview.Run(commandContext(cmd), preview.Options{
		Model: cfg.Model,
		Input: cfg.Input,
		YMax:  cfg.Chart.YMax,
		Color: colorEnabled,
	}, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(colorEnabled)
	_, err = fmt.Fprintln(out, styles.FormatLaunch(final.Launch()))
	return err
}
