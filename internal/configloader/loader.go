// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered decoding,
// environment variable support and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/yaklabco/rocketlab/pkg/config"
	"github.com/yaklabco/rocketlab/pkg/fsutil"
)

// maxConfigSize bounds how much of a config file is read.
const maxConfigSize int64 = 1 << 20

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// It is loaded after the project config and must exist.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// NonInteractive suppresses hints meant for a person at a terminal.
	NonInteractive bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (ROCKETLAB_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.rocketlab.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/rocketlab/config.yaml)
//  6. System config (/etc/rocketlab/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "system", path: paths.System, skip: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		cfg, err = loadLayer(ctx, cfg, layer.path)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				return nil, vErr
			}
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	if msg := checkAsset(cfg, workDir); msg != "" {
		result.Warnings = append(result.Warnings, msg)
	}

	if paths.Project == "" && paths.Explicit == "" && !opts.NonInteractive && IsInteractive() {
		result.Warnings = append(result.Warnings,
			"no .rocketlab.yml found; run 'rocketlab init' to create one")
	}

	result.Config = cfg
	return result, nil
}

// loadLayer decodes the file at path over base and validates the result.
// Any new validation error is attributed to path.
func loadLayer(ctx context.Context, base *config.Config, path string) (*config.Config, error) {
	content, err := fsutil.ReadFile(ctx, path, maxConfigSize)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.DecodeOnto(base, content)
	if err != nil {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}

	validation := ValidateWithFile(cfg, path)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	return cfg, nil
}

// checkAsset returns a warning when the configured marker image is absent.
func checkAsset(cfg *config.Config, workDir string) string {
	if cfg.Asset.Path == "" {
		return ""
	}
	path := cfg.Asset.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	if fsutil.Exists(path) {
		return ""
	}
	return fmt.Sprintf("asset.path: %s not found; the triangle marker will be used", cfg.Asset.Path)
}

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
