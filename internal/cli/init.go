package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/pkg/config"
	"github.com/yaklabco/rocketlab/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	bare   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new rocketlab configuration file",
		Long: `Create a new .rocketlab.yml configuration file in the current directory
with the default model, slider, chart, and server settings, each documented.

Examples:
  rocketlab init                      Create .rocketlab.yml
  rocketlab init --format json        Create .rocketlab.json instead
  rocketlab init --bare               Skip the per-section comments
  rocketlab init --output custom.yml  Write to a custom file path
  rocketlab init --force              Overwrite, keeping a .bak copy`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.bare, "bare", false, "Write values only, without per-section comments (yaml)")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .rocketlab.yml or .rocketlab.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	ctx := commandContext(cmd)

	if flags.format != "yaml" && flags.format != "json" {
		return usageErrorf(fmt.Errorf("invalid format %q: must be yaml or json", flags.format))
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == "json" {
			outputPath = ".rocketlab.json"
		} else {
			outputPath = ".rocketlab.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) {
		if !flags.force {
			return usageErrorf(fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
		backupPath, err := fsutil.Backup(ctx, absPath)
		if err != nil {
			return err
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath, "backup", backupPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: flags.format, Bare: flags.bare})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.format == "json" {
		logger.Info("JSON configs are not auto-discovered; pass this one with --config")
	}
	logger.Info("run 'rocketlab serve' to open the simulator")

	return nil
}
