package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"text/template"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string

	// Base supplies the values written into the template.
	// NewConfig() is used when nil.
	Base *Config

	// Bare drops the per-section comments from YAML output and keeps only
	// the header.
	Bare bool
}

var yamlTemplate = template.Must(template.New("config").Funcs(template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(`# rocketlab configuration
# See: https://github.com/yaklabco/rocketlab

# Height curve: height = -curvature * (soda - optimal)^2 + max_height,
# floored at zero.
model:
  curvature: {{num .Model.Curvature}}
  optimal: {{num .Model.Optimal}}
  max_height: {{num .Model.MaxHeight}}

# Soda slider bounds, in teaspoons.
input:
  min: {{num .Input.Min}}
  max: {{num .Input.Max}}
  step: {{num .Input.Step}}
  default: {{num .Input.Default}}

# Chart geometry. Bounds are fixed and never rescale to the data.
chart:
  width: {{.Chart.Width}}
  height: {{.Chart.Height}}
  x_min: {{num .Chart.XMin}}
  x_max: {{num .Chart.XMax}}
  y_min: {{num .Chart.YMin}}
  y_max: {{num .Chart.YMax}}
  title: {{printf "%q" .Chart.Title}}
  x_label: {{printf "%q" .Chart.XLabel}}
  y_label: {{printf "%q" .Chart.YLabel}}
  # Scale applied to the rocket image.
  zoom: {{num .Chart.Zoom}}
  # Edge length of the fallback triangle, in pixels.
  glyph_size: {{.Chart.GlyphSize}}

# Rocket marker image. A missing file falls back to a triangle.
asset:
  path: {{printf "%q" .Asset.Path}}

# Web presentation.
server:
  addr: {{printf "%q" .Server.Addr}}
  shutdown_timeout: {{.Server.ShutdownTimeout}}

# Log level: debug, info, warn, or error
log_level: {{.LogLevel}}
`))

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	base := opts.Base
	if base == nil {
		base = NewConfig()
	}

	switch opts.Format {
	case "", "yaml", "yml":
		if opts.Bare {
			return base.ToYAMLWithHeader(DefaultTemplateHeader())
		}
		var buf bytes.Buffer
		if err := yamlTemplate.Execute(&buf, base); err != nil {
			return nil, fmt.Errorf("execute template: %w", err)
		}
		return buf.Bytes(), nil
	case "json":
		return templateToJSON(base)
	default:
		return nil, fmt.Errorf("unsupported template format %q (expected yaml or json)", opts.Format)
	}
}

// templateToJSON renders base as indented JSON with the same keys and value
// encodings as the YAML form, so either file loads through the YAML decoder.
func templateToJSON(base *Config) ([]byte, error) {
	yamlBytes, err := base.ToYAML()
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(yamlBytes, &generic); err != nil {
		return nil, fmt.Errorf("reparse yaml: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# rocketlab configuration
# See: https://github.com/yaklabco/rocketlab`
}
