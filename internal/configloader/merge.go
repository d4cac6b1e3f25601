package configloader

import "github.com/yaklabco/rocketlab/pkg/config"

// merge applies CLI overrides onto base. File layers are decoded with
// config.DecodeOnto instead, which keeps explicit zero values; flags cannot
// express "unset", so here a zero value in override means "not given".
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Server.Addr != "" {
		result.Server.Addr = override.Server.Addr
	}
	if override.Server.ShutdownTimeout != 0 {
		result.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}
	if override.Asset.Path != "" {
		result.Asset.Path = override.Asset.Path
	}
	if override.Chart.Width != 0 {
		result.Chart.Width = override.Chart.Width
	}
	if override.Chart.Height != 0 {
		result.Chart.Height = override.Chart.Height
	}
	if override.Chart.Zoom != 0 {
		result.Chart.Zoom = override.Chart.Zoom
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	// Debug can only be switched on from the command line.
	if override.Debug {
		result.Debug = true
		result.LogLevel = "debug"
	}

	return &result
}
