// Package config defines core configuration types for rocketlab.
// These types are pure data structures; discovery and layering live in
// internal/configloader.
package config

import (
	"time"

	"github.com/yaklabco/rocketlab/pkg/asset"
	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
	"github.com/yaklabco/rocketlab/pkg/plot"
)

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the colour mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Defaults for the web presentation.
const (
	DefaultAddr            = ":8501"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
)

// AssetConfig locates the rocket marker image.
type AssetConfig struct {
	// Path is resolved relative to the working directory.
	Path string `yaml:"path" json:"path"`
}

// ServerConfig controls the web presentation.
type ServerConfig struct {
	Addr            string        `yaml:"addr" json:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// Config is the root configuration structure for rocketlab.
type Config struct {
	// Model holds the height curve parameters.
	Model height.Model `yaml:"model" json:"model"`

	// Input bounds the soda slider.
	Input launch.Input `yaml:"input" json:"input"`

	// Chart controls the rendered figure.
	Chart plot.Options `yaml:"chart" json:"chart"`

	Asset  AssetConfig  `yaml:"asset" json:"asset"`
	Server ServerConfig `yaml:"server" json:"server"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format specifies the report format for sweep.
	Format OutputFormat `yaml:"-" json:"-"`

	// Color controls styled output.
	Color ColorMode `yaml:"-" json:"-"`

	// Debug forces debug logging.
	Debug bool `yaml:"-" json:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Model: height.Default(),
		Input: launch.DefaultInput(),
		Chart: plot.DefaultOptions(),
		Asset: AssetConfig{
			Path: asset.DefaultPath,
		},
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		LogLevel: DefaultLogLevel,
		Format:   FormatText,
		Color:    ColorAuto,
	}
}
