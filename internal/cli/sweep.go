package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/pkg/config"
	"github.com/yaklabco/rocketlab/pkg/reporter"
)

type sweepFlags struct {
	format    string
	showModel bool
	compact   bool
	noSummary bool
}

func newSweepCommand() *cobra.Command {
	flags := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate every slider position",
		Long: `Evaluate the height model at every slider step and report the results.

Formats:
  text    one summary sentence per step (default)
  table   aligned table with height bars, peak marked
  json    machine-readable launches and summary

Examples:
  rocketlab sweep                  Summary sentences
  rocketlab sweep --format table   Bar table
  rocketlab sweep --format json    JSON for scripts`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, table, json")
	cmd.Flags().BoolVar(&flags.showModel, "show-model", false, "print the curve parameters first (text format)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the peak and grounded summary")

	return cmd
}

func runSweep(cmd *cobra.Command, flags *sweepFlags) error {
	cli := &config.Config{}
	if flags.format != "" {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return usageErrorf(err)
		}
		cli.Format = config.OutputFormat(format)
	}

	sess, err := loadSession(cmd, cli)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      reporter.Format(cfg.Format),
		Color:       string(cfg.Color),
		ShowSummary: !flags.noSummary,
		ShowModel:   flags.showModel,
		Compact:     flags.compact,
		YMax:        cfg.Chart.YMax,
	})
	if err != nil {
		return usageErrorf(err)
	}

	result := reporter.NewResult(cfg.Model, cfg.Input)
	sess.logger.Debug("sweeping slider", logging.FieldSteps, len(result.Launches))

	if _, err := rep.Report(commandContext(cmd), result); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
