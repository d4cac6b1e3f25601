package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rocketlab/internal/cli"
	"github.com/yaklabco/rocketlab/pkg/reporter"
)

// writeConfig creates an explicit config in a temp dir so tests do not
// depend on whatever project or user config surrounds the test binary.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "rocketlab.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_SweepText(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "log_level: error\n")

	output, err := execute(t, "sweep", "--config", cfg, "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, output, "You've added 6 tsp of baking soda. The rocket reached about 20.0 ft!")
	assert.Contains(t, output, "You've added 0 tsp of baking soda. The rocket reached about 2.0 ft!")
	assert.Contains(t, output, "13 launches, peak 20.0 ft at 6 tsp, 0 grounded")
}

func TestIntegration_SweepJSON(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, `log_level: error
input:
  min: 0
  max: 12
  step: 2
  default: 6
`)

	output, err := execute(t, "sweep", "--config", cfg, "--format", "json")
	require.NoError(t, err)

	var got reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(output), &got))

	assert.Equal(t, 7, got.Summary.Count)
	require.NotNil(t, got.Summary.Peak)
	assert.InDelta(t, 6.0, got.Summary.Peak.SodaAmount, 0)
	assert.InDelta(t, 20.0, got.Summary.Peak.Height, 0)
}

func TestIntegration_SweepTable(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "log_level: error\n")

	output, err := execute(t, "sweep", "--config", cfg, "--format", "table", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, output, "SODA")
	assert.Contains(t, output, "20.0 ft")
}

func TestIntegration_SweepInvalidFormat(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "log_level: error\n")

	_, err := execute(t, "sweep", "--config", cfg, "--format", "sarif")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "model:\n  curvature: -1\n")

	_, err := execute(t, "sweep", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "curvature must be > 0")
	assert.Contains(t, err.Error(), cfg)
}

func TestIntegration_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "sweep", "--config", filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestIntegration_InvalidColor(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "log_level: error\n")

	_, err := execute(t, "sweep", "--config", cfg, "--color", "rainbow")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestIntegration_RenderMissingAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")
	out := filepath.Join(dir, "launch.png")

	output, err := execute(t, "render",
		"--config", cfg,
		"--color", "never",
		"--asset", filepath.Join(dir, "no-rocket.png"),
		"--soda", "6",
		"-o", out,
	)
	require.NoError(t, err)
	assert.Contains(t, output, "You've added 6 tsp of baking soda. The rocket reached about 20.0 ft!")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestIntegration_RenderCorruptAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")
	rocket := filepath.Join(dir, "rocket.png")
	require.NoError(t, os.WriteFile(rocket, []byte("definitely not a png"), 0644))
	out := filepath.Join(dir, "launch.png")

	output, err := execute(t, "render",
		"--config", cfg,
		"--color", "never",
		"--asset", rocket,
		"--soda", "0",
		"-o", out,
	)
	require.NoError(t, err)
	assert.Contains(t, output, "0 tsp")
	assert.Contains(t, output, "2.0 ft")
	assert.FileExists(t, out)
}

func TestIntegration_RenderImageAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")

	rocket := filepath.Join(dir, "rocket.png")
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	require.NoError(t, os.WriteFile(rocket, buf.Bytes(), 0644))

	out := filepath.Join(dir, "launch.png")
	_, err := execute(t, "render", "--config", cfg, "--asset", rocket, "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestIntegration_RenderBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")
	out := filepath.Join(dir, "launch.png")
	require.NoError(t, os.WriteFile(out, []byte("old chart"), 0644))

	_, err := execute(t, "render", "--config", cfg, "-o", out, "--backup")
	require.NoError(t, err)

	backup, err := os.ReadFile(out + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "old chart", string(backup))

	current, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(current, []byte("\x89PNG")))
}

func TestIntegration_RenderIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")
	out := filepath.Join(dir, "launch.png")

	_, err := execute(t, "render", "--config", cfg, "--soda", "3", "-o", out)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = execute(t, "render", "--config", cfg, "--soda", "3", "-o", out)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIntegration_InitBare(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bare.yml")

	_, err := execute(t, "init", "--bare", "-o", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "# Height curve")

	output, err := execute(t, "sweep", "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"count": 13`)
}

func TestIntegration_RenderSnapsSoda(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")

	output, err := execute(t, "render",
		"--config", cfg,
		"--color", "never",
		"--soda", "99",
		"-o", filepath.Join(dir, "launch.png"),
	)
	require.NoError(t, err)
	assert.Contains(t, output, "You've added 12 tsp")
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		file   string
		want   string
	}{
		{name: "yaml", format: "yaml", file: "config.yml", want: "curvature: 0.5"},
		{name: "json", format: "json", file: "config.json", want: `"curvature": 0.5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tt.file)

			_, err := execute(t, "init", "--format", tt.format, "-o", path)
			require.NoError(t, err)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(content), tt.want)

			// The generated file loads back cleanly.
			output, err := execute(t, "sweep", "--config", path, "--format", "json")
			require.NoError(t, err)
			assert.Contains(t, output, `"count": 13`)
		})
	}
}

func TestIntegration_InitExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".rocketlab.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	_, err := execute(t, "init", "-o", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init", "-o", path, "--force")
	require.NoError(t, err)

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "log_level: warn\n", string(backup))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# rocketlab configuration"))
}

func TestIntegration_InitInvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "init", "--format", "toml", "-o", filepath.Join(t.TempDir(), "x.toml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "color before help",
			args: []string{"--color", "never", "--help"},
			want: []string{"Environment:", "ROCKETLAB_ADDR", "ROCKETLAB_ASSET_PATH", "Commands:"},
		},
		{
			name: "help before color",
			args: []string{"--help", "--color", "never"},
			want: []string{"Environment:", "ROCKETLAB_ADDR"},
		},
		{
			name: "inline color value",
			args: []string{"--help", "--color=never"},
			want: []string{"Environment:", "--config"},
		},
		{
			name: "subcommand help",
			args: []string{"render", "--help", "--color", "never"},
			want: []string{"--soda", "--backup", "Global Flags:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			output, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
			assert.NotContains(t, output, "\x1b[")
		})
	}
}

func TestIntegration_SubcommandHelpOmitsEnvironment(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "sweep", "--help", "--color=never")
	require.NoError(t, err)
	assert.Contains(t, output, "--format")
	assert.NotContains(t, output, "Environment:")
}
