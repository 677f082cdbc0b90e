package calculate

import (
	"math"
	"testing"
)

func TestShortTermTrend(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		window   int
		expected float64
	}{
		{
			name:     "empty series",
			prices:   []float64{},
			window:   5,
			expected: 0.0,
		},
		{
			name:     "single price",
			prices:   []float64{100},
			window:   5,
			expected: 0.0,
		},
		{
			name:     "flat series",
			prices:   []float64{100, 100, 100, 100, 100},
			window:   5,
			expected: 0.0,
		},
		{
			// slope 1 per step over mean price 102
			name:     "linear rise",
			prices:   []float64{100, 101, 102, 103, 104},
			window:   5,
			expected: 1.0 / 102.0,
		},
		{
			name:     "linear fall",
			prices:   []float64{104, 103, 102, 101, 100},
			window:   5,
			expected: -1.0 / 102.0,
		},
		{
			// only the trailing window counts; the early crash is ignored
			name:     "window trims older prices",
			prices:   []float64{500, 100, 101, 102, 103, 104},
			window:   5,
			expected: 1.0 / 102.0,
		},
		{
			name:     "window larger than series",
			prices:   []float64{100, 102},
			window:   5,
			expected: 2.0 / 101.0,
		},
		{
			// zero-mean window divides by 1.0 instead of the mean
			name:     "zero mean fallback",
			prices:   []float64{-1, 1},
			window:   5,
			expected: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortTermTrend(tt.prices, tt.window)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ShortTermTrend() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShortTermTrendMagnitude(t *testing.T) {
	// a perfectly linear rising series around 100 should be close to +1%/day
	got := ShortTermTrend([]float64{100, 101, 102, 103, 104}, 5)
	if math.Abs(got-0.01) > 2e-3 {
		t.Errorf("ShortTermTrend() = %v, want about +0.01", got)
	}
}
