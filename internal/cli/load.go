package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rocketlab/internal/configloader"
	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/pkg/config"
)

// session is the resolved state shared by commands that simulate launches.
type session struct {
	cfg       *config.Config
	workDir   string
	assetPath string
	logger    *log.Logger
}

// loadSession resolves configuration for cmd, layering cli over every
// discovered file and the environment. Loader warnings are logged.
func loadSession(cmd *cobra.Command, cli *config.Config) (*session, error) {
	ctx := commandContext(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("get color flag: %w", err)
	}
	cli.Color = config.ColorMode(colorMode)
	if !cli.Color.IsValid() {
		return nil, usageErrorf(fmt.Errorf("invalid --color %q: must be auto, always, or never", colorMode))
	}

	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return nil, fmt.Errorf("get debug flag: %w", err)
	}
	cli.Debug = debug

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, err
	}

	cfg := result.Config
	logging.SetLevel(cfg.LogLevel)
	logger := logging.Default()

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, result.LoadedFrom)
	}

	assetPath := cfg.Asset.Path
	if assetPath != "" && !filepath.IsAbs(assetPath) {
		assetPath = filepath.Join(workDir, assetPath)
	}

	return &session{
		cfg:       cfg,
		workDir:   workDir,
		assetPath: assetPath,
		logger:    logger,
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
