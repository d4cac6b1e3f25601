// Package cli provides the Cobra command structure for rocketlab.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rocketlab command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rocketlab",
		Short: "Baking soda and vinegar rocket simulator",
		Long: `rocketlab shows how high a baking soda and vinegar rocket flies.

Choose how many teaspoons of baking soda go into 2 cups of vinegar and
rocketlab evaluates a simple parabolic height model, draws the launch on a
chart, and tells you how high the rocket got. Use it from the browser
(serve), the terminal (preview), or in scripts (render, sweep).`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf(err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newSweepCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Register --help before lookup so "--help --color never" parses --help
	// as a bool instead of swallowing the next argument.
	rootCmd.InitDefaultHelpFlag()
	for _, sub := range rootCmd.Commands() {
		sub.InitDefaultHelpFlag()
	}

	applyHelp(rootCmd)

	return rootCmd
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	return usageErrorf(cobra.NoArgs(cmd, args))
}
