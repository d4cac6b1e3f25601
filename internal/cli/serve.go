package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/internal/web"
	"github.com/yaklabco/rocketlab/pkg/config"
)

type serveFlags struct {
	addr  string
	asset string
}

func newServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rocket simulator in the browser",
		Long: `Start the web presentation: a page with the baking soda slider, the
launch chart, and the height summary. Every request renders a fresh launch.

Endpoints:
  /              HTML page (?soda=N)
  /chart.png     chart image (?soda=N)
  /api/launch    launch as JSON (?soda=N)
  /healthz       liveness probe

Examples:
  rocketlab serve                   Listen on :8501
  rocketlab serve --addr :9000      Listen on another port
  rocketlab serve --asset art.png   Use a different marker image`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default from config, :8501)")
	cmd.Flags().StringVar(&flags.asset, "asset", "", "marker image path")

	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cli := &config.Config{}
	cli.Server.Addr = flags.addr
	cli.Asset.Path = flags.asset

	sess, err := loadSession(cmd, cli)
	if err != nil {
		return err
	}

	logger := logging.NewInteractive()
	logger.SetLevel(logging.ParseLevel(sess.cfg.LogLevel))

	srv, err := web.New(web.Options{
		Addr:            sess.cfg.Server.Addr,
		ShutdownTimeout: sess.cfg.Server.ShutdownTimeout,
		Model:           sess.cfg.Model,
		Input:           sess.cfg.Input,
		Chart:           sess.cfg.Chart,
		AssetPath:       sess.assetPath,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	return srv.Run(commandContext(cmd))
}
