// Package height implements the rocket height model: an inverted parabola that
// maps teaspoons of baking soda to the height (in feet) a vinegar rocket reaches.
//
// The model is a pure function over immutable parameters. It never fails and
// never returns a negative height.
package height

import (
	"errors"
	"fmt"
	"math"
)

// Default model parameters.
const (
	DefaultCurvature = 0.5
	DefaultOptimal   = 6.0
	DefaultMaxHeight = 20.0
)

// ErrInvalidModel is returned by Validate for unusable parameters.
var ErrInvalidModel = errors.New("invalid height model")

// Model holds the parameters of the parabola
//
//	height = -Curvature * (soda - Optimal)^2 + MaxHeight
//
// clamped at zero. A Model is a plain value; copy it freely.
type Model struct {
	// Curvature is the steepness factor a. Must be > 0.
	Curvature float64 `yaml:"curvature" json:"curvature"`

	// Optimal is the soda amount k (tsp) at which the rocket peaks.
	Optimal float64 `yaml:"optimal" json:"optimal"`

	// MaxHeight is the peak height in feet, reached at Optimal.
	MaxHeight float64 `yaml:"max_height" json:"max_height"`
}

// Default returns the model with a = 0.5, k = 6 and a 20 ft peak.
func Default() Model {
	return Model{
		Curvature: DefaultCurvature,
		Optimal:   DefaultOptimal,
		MaxHeight: DefaultMaxHeight,
	}
}

// Height returns the rocket height in feet for the given soda amount.
// Any input is accepted; the result is always a finite-or-zero value >= 0.
func (m Model) Height(soda float64) float64 {
	d := soda - m.Optimal
	h := -m.Curvature*d*d + m.MaxHeight
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return h
}

// RootOffset is the distance from Optimal at which the height reaches zero.
// Beyond it the height stays clamped at zero.
func (m Model) RootOffset() float64 {
	if m.Curvature <= 0 || m.MaxHeight <= 0 {
		return 0
	}
	return math.Sqrt(m.MaxHeight / m.Curvature)
}

// Validate reports parameters that would break the model's guarantees.
func (m Model) Validate() error {
	switch {
	case !isFinite(m.Curvature) || !isFinite(m.Optimal) || !isFinite(m.MaxHeight):
		return fmt.Errorf("%w: parameters must be finite", ErrInvalidModel)
	case m.Curvature <= 0:
		return fmt.Errorf("%w: curvature must be > 0, got %g", ErrInvalidModel, m.Curvature)
	case m.MaxHeight < 0:
		return fmt.Errorf("%w: max height must be >= 0, got %g", ErrInvalidModel, m.MaxHeight)
	}
	return nil
}

// Compute evaluates the default model.
func Compute(soda float64) float64 {
	return Default().Height(soda)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
