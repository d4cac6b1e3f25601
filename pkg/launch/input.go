package launch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default slider bounds.
const (
	DefaultMin     = 0.0
	DefaultMax     = 12.0
	DefaultStep    = 1.0
	DefaultDefault = 6.0
)

// ErrInvalidInput is returned by Input.Validate.
var ErrInvalidInput = errors.New("invalid input control")

// Input describes the bounded, stepped slider that feeds the model.
type Input struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Step    float64 `yaml:"step" json:"step"`
	Default float64 `yaml:"default" json:"default"`
}

// DefaultInput returns the 0..12 tsp slider with step 1 starting at 6.
func DefaultInput() Input {
	return Input{
		Min:     DefaultMin,
		Max:     DefaultMax,
		Step:    DefaultStep,
		Default: DefaultDefault,
	}
}

// Validate checks the bounds are usable.
func (in Input) Validate() error {
	switch {
	case math.IsNaN(in.Min) || math.IsNaN(in.Max) || math.IsNaN(in.Step) || math.IsNaN(in.Default):
		return fmt.Errorf("%w: values must be numbers", ErrInvalidInput)
	case in.Min >= in.Max:
		return fmt.Errorf("%w: min (%g) must be below max (%g)", ErrInvalidInput, in.Min, in.Max)
	case in.Step <= 0:
		return fmt.Errorf("%w: step must be > 0, got %g", ErrInvalidInput, in.Step)
	case in.Default < in.Min || in.Default > in.Max:
		return fmt.Errorf("%w: default %g outside [%g, %g]", ErrInvalidInput, in.Default, in.Min, in.Max)
	}
	return nil
}

// Clamp bounds v to [Min, Max].
func (in Input) Clamp(v float64) float64 {
	return math.Max(in.Min, math.Min(in.Max, v))
}

// Snap clamps v and rounds it to the nearest step from Min.
func (in Input) Snap(v float64) float64 {
	if math.IsNaN(v) {
		return in.Default
	}
	v = in.Clamp(v)
	if in.Step <= 0 {
		return v
	}
	n := math.Round((v - in.Min) / in.Step)
	return in.Clamp(in.Min + n*in.Step)
}

// Parse reads a slider value from user input. Empty or malformed values
// yield Default; everything else is snapped onto the slider.
func (in Input) Parse(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return in.Default
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return in.Default
	}
	return in.Snap(v)
}

// Move shifts v by delta steps and snaps the result.
func (in Input) Move(v float64, delta int) float64 {
	return in.Snap(v + float64(delta)*in.Step)
}

// Steps lists every slider position from Min to Max inclusive.
func (in Input) Steps() []float64 {
	if in.Step <= 0 || in.Min > in.Max {
		return nil
	}
	count := int(math.Floor((in.Max-in.Min)/in.Step+1e-9)) + 1
	steps := make([]float64, 0, count)
	for i := range count {
		steps = append(steps, in.Min+float64(i)*in.Step)
	}
	return steps
}
