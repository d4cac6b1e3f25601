package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/rocketlab/pkg/config"
)

// envVarPrefix is the prefix for all rocketlab environment variables.
const envVarPrefix = "ROCKETLAB_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeFloat
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ADDR":         {field: "server.addr", typ: envTypeString, help: "Listen address for serve, e.g. :8501"},
	"ASSET_PATH":   {field: "asset.path", typ: envTypeString, help: "Path to the rocket marker image"},
	"ASSET_ZOOM":   {field: "chart.zoom", typ: envTypeFloat, help: "Scale applied to the marker image"},
	"CHART_WIDTH":  {field: "chart.width", typ: envTypeInt, help: "Chart width in pixels"},
	"CHART_HEIGHT": {field: "chart.height", typ: envTypeInt, help: "Chart height in pixels"},
	"LOG_LEVEL":    {field: "log_level", typ: envTypeString, help: "Log level: debug, info, warn, or error"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ROCKETLAB_ (e.g., ROCKETLAB_ADDR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := strings.TrimSpace(os.Getenv(envVar))
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationError{Field: envVar, Value: value, Message: fmt.Sprintf("invalid integer %q", value)}
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &ValidationError{Field: envVar, Value: value, Message: fmt.Sprintf("invalid number %q", value)}
		}
		return setFloatField(cfg, mapping.field, f)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "server.addr":
		cfg.Server.Addr = value
	case "asset.path":
		cfg.Asset.Path = value
	case "log_level":
		cfg.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "chart.width":
		cfg.Chart.Width = value
	case "chart.height":
		cfg.Chart.Height = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setFloatField sets a float field on the config by field path.
func setFloatField(cfg *config.Config, field string, value float64) error {
	switch field {
	case "chart.zoom":
		cfg.Chart.Zoom = value
	default:
		return fmt.Errorf("unknown float field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		out[envVarPrefix+suffix] = mapping.help
	}
	return out
}
