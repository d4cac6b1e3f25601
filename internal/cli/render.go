package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/internal/ui/pretty"
	"github.com/yaklabco/rocketlab/pkg/asset"
	"github.com/yaklabco/rocketlab/pkg/config"
	"github.com/yaklabco/rocketlab/pkg/fsutil"
	"github.com/yaklabco/rocketlab/pkg/launch"
	"github.com/yaklabco/rocketlab/pkg/plot"
)

// defaultRenderOutput is where render writes when -o is not given.
const defaultRenderOutput = "launch.png"

type renderFlags struct {
	soda   float64
	output string
	asset  string
	backup bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one launch chart to a PNG file",
		Long: `Evaluate one slider position and write the chart as a PNG.

The soda amount is snapped onto the configured slider. If the marker image
cannot be loaded a warning is logged and the red triangle marker is used.
The file is replaced atomically.

Examples:
  rocketlab render                       Default slider, writes launch.png
  rocketlab render --soda 3 -o low.png   Three teaspoons
  rocketlab render -o launch.png --backup  Keep launch.png.bak`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}

	cmd.Flags().Float64Var(&flags.soda, "soda", 0, "baking soda in teaspoons (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultRenderOutput, "output PNG path")
	cmd.Flags().StringVar(&flags.asset, "asset", "", "marker image path")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a .bak copy of an existing output file")

	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags) error {
	cli := &config.Config{}
	cli.Asset.Path = flags.asset

	sess, err := loadSession(cmd, cli)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	cfg := sess.cfg

	soda := cfg.Input.Default
	if cmd.Flags().Changed("soda") {
		soda = cfg.Input.Snap(flags.soda)
	}
	l := launch.New(cfg.Model, soda)

	res := asset.Load(ctx, sess.assetPath)
	marker, warning := plot.SelectMarker(res, cfg.Chart)
	if warning != "" {
		sess.logger.Warn(warning)
	}

	frame, err := plot.Render(ctx, cfg.Chart, l, marker)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	output := flags.output
	if !filepath.IsAbs(output) {
		output = filepath.Join(sess.workDir, output)
	}

	if flags.backup {
		backupPath, err := fsutil.Backup(ctx, output)
		if err != nil {
			return err
		}
		if backupPath != "" {
			sess.logger.Debug("backed up previous chart", logging.FieldPath, backupPath)
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, output, frame.PNG, fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}

	msg := "chart written"
	if !written {
		msg = "chart unchanged"
	}
	sess.logger.Info(msg,
		logging.FieldOutput, flags.output,
		logging.FieldSoda, l.SodaAmount,
		logging.FieldHeight, l.Height,
		logging.FieldMarker, frame.Marker,
		logging.FieldBytes, len(frame.PNG),
	)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
	_, err = fmt.Fprintln(out, styles.FormatLaunch(l))
	return err
}
