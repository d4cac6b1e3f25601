package launch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
)

func TestNew_DerivesHeight(t *testing.T) {
	t.Parallel()

	l := launch.New(height.Default(), 6)
	assert.Equal(t, 6.0, l.SodaAmount)
	assert.Equal(t, 20.0, l.Height)

	l = launch.New(height.Default(), 0)
	assert.Equal(t, 2.0, l.Height)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		soda float64
		want string
	}{
		{"optimal", 6, "You've added 6 tsp of baking soda. The rocket reached about 20.0 ft!"},
		{"empty", 0, "You've added 0 tsp of baking soda. The rocket reached about 2.0 ft!"},
		{"fractional", 2.5, "You've added 2.5 tsp of baking soda. The rocket reached about 13.9 ft!"},
		{"clamped", 14, "You've added 14 tsp of baking soda. The rocket reached about 0.0 ft!"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, launch.New(height.Default(), testCase.soda).Summary())
		})
	}
}

func TestSummary_ContainsQuantities(t *testing.T) {
	t.Parallel()

	six := launch.New(height.Default(), 6).Summary()
	assert.Contains(t, six, "6 tsp")
	assert.Contains(t, six, "20.0 ft")

	zero := launch.New(height.Default(), 0).Summary()
	assert.Contains(t, zero, "0 tsp")
	assert.Contains(t, zero, "2.0 ft")
}

func TestSummaryMarkdown(t *testing.T) {
	t.Parallel()

	got := launch.New(height.Default(), 6).SummaryMarkdown()
	assert.Equal(t, "You've added **6 tsp** of baking soda. The rocket reached about **20.0 ft**!", got)
}

func TestHeightLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "20.0 ft", launch.New(height.Default(), 6).HeightLabel())
	assert.Equal(t, "19.5 ft", launch.New(height.Default(), 7).HeightLabel())
}

func TestSweep(t *testing.T) {
	t.Parallel()

	launches := launch.Sweep(height.Default(), launch.DefaultInput())
	require.Len(t, launches, 13)

	assert.Equal(t, 0.0, launches[0].SodaAmount)
	assert.Equal(t, 2.0, launches[0].Height)
	assert.Equal(t, 12.0, launches[12].SodaAmount)
	assert.Equal(t, 2.0, launches[12].Height)

	peak, ok := launch.Peak(launches)
	require.True(t, ok)
	assert.Equal(t, 6.0, peak.SodaAmount)
	assert.Equal(t, 20.0, peak.Height)
}

func TestPeak_Empty(t *testing.T) {
	t.Parallel()

	_, ok := launch.Peak(nil)
	assert.False(t, ok)
}

func TestInput_Parse(t *testing.T) {
	t.Parallel()

	in := launch.DefaultInput()

	tests := []struct {
		raw  string
		want float64
	}{
		{"", 6},
		{"   ", 6},
		{"abc", 6},
		{"NaN", 6},
		{"0", 0},
		{"6", 6},
		{"12", 12},
		{"13", 12},
		{"-4", 0},
		{"4.4", 4},
		{"4.6", 5},
		{" 9 ", 9},
		{"+Inf", 12},
	}

	for _, testCase := range tests {
		t.Run(testCase.raw, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, in.Parse(testCase.raw))
		})
	}
}

func TestInput_Move(t *testing.T) {
	t.Parallel()

	in := launch.DefaultInput()

	assert.Equal(t, 7.0, in.Move(6, 1))
	assert.Equal(t, 5.0, in.Move(6, -1))
	assert.Equal(t, 12.0, in.Move(12, 1))
	assert.Equal(t, 0.0, in.Move(0, -1))
}

func TestInput_Steps(t *testing.T) {
	t.Parallel()

	in := launch.Input{Min: 0, Max: 1, Step: 0.25, Default: 0.5}
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, in.Steps())

	assert.Nil(t, launch.Input{Min: 0, Max: 1, Step: 0}.Steps())
}

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, launch.DefaultInput().Validate())

	bad := []launch.Input{
		{Min: 5, Max: 5, Step: 1, Default: 5},
		{Min: 0, Max: 12, Step: 0, Default: 6},
		{Min: 0, Max: 12, Step: 1, Default: 13},
	}
	for _, in := range bad {
		err := in.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, launch.ErrInvalidInput)
	}
}
