package plot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
)

func TestTicks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lo, hi float64
		want   []float64
	}{
		{name: "soda axis", lo: 0, hi: 12, want: []float64{0, 2, 4, 6, 8, 10, 12}},
		{name: "height axis", lo: 0, hi: 25, want: []float64{0, 5, 10, 15, 20, 25}},
		{name: "offset start", lo: 0.7, hi: 3, want: []float64{1, 1.5, 2, 2.5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ticks(tt.lo, tt.hi)
			values := make([]float64, len(got))
			for i, tick := range got {
				values[i] = tick.Value
			}
			assert.InDeltaSlice(t, tt.want, values, 1e-9)
		})
	}
}

func TestTicks_HugeMagnitudeTerminates(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.XMin, opts.XMax = 1e18, 1e18+128
	require.NoError(t, opts.Validate())

	done := make(chan []chart.Tick, 1)
	go func() { done <- ticks(opts.XMin, opts.XMax) }()

	select {
	case got := <-done:
		assert.NotEmpty(t, got)
		assert.Less(t, len(got), 20)
	case <-time.After(3 * time.Second):
		t.Fatal("ticks did not terminate")
	}
}
