package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rocketlab/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "chart.width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownLogLevels lists valid log_level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if err := cfg.Model.Validate(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "model",
			Value:   cfg.Model,
			Message: err.Error(),
		})
	}

	if err := cfg.Input.Validate(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "input",
			Value:   cfg.Input,
			Message: err.Error(),
		})
	}

	if err := cfg.Chart.Validate(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "chart",
			Value:   cfg.Chart,
			Message: err.Error(),
		})
	}

	validateFit(cfg, result)

	if cfg.Server.Addr == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.addr",
			Value:   cfg.Server.Addr,
			Message: "listen address must not be empty",
		})
	}
	if cfg.Server.ShutdownTimeout < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.shutdown_timeout",
			Value:   cfg.Server.ShutdownTimeout,
			Message: "shutdown timeout must be >= 0",
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json", cfg.Format),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	return result
}

// validateFit warns when slider values or the model's peak fall outside the
// fixed chart bounds; such launches are drawn off-canvas.
func validateFit(cfg *config.Config, result *ValidationResult) {
	if cfg.Input.Min < cfg.Chart.XMin || cfg.Input.Max > cfg.Chart.XMax {
		result.Warnings = append(result.Warnings, ValidationError{
			Field: "input",
			Value: cfg.Input,
			Message: fmt.Sprintf("slider range [%g, %g] exceeds chart x range [%g, %g]",
				cfg.Input.Min, cfg.Input.Max, cfg.Chart.XMin, cfg.Chart.XMax),
		})
	}
	if cfg.Model.MaxHeight > cfg.Chart.YMax {
		result.Warnings = append(result.Warnings, ValidationError{
			Field: "model.max_height",
			Value: cfg.Model.MaxHeight,
			Message: fmt.Sprintf("peak height %g exceeds chart y max %g",
				cfg.Model.MaxHeight, cfg.Chart.YMax),
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidLogLevel returns true if the level string is valid.
func IsValidLogLevel(level string) bool {
	return knownLogLevels[level]
}
