package calculate

import "github.com/montanaflynn/stats"

// ShortTermTrend fits an ordinary least-squares line through the last
// `window` prices against their index positions and returns the slope
// normalized by the mean price, i.e. relative change per step. Series
// shorter than two points carry no trend. Equal spacing is assumed;
// calendar gaps are not modeled.
func ShortTermTrend(prices []float64, window int) float64 {
	n := window
	if len(prices) < n {
		n = len(prices)
	}
	if n < 2 {
		return 0.0
	}

	y := prices[len(prices)-n:]
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	xMean, _ := stats.Mean(x)
	yMean, _ := stats.Mean(y)

	var num, denom float64
	for i := 0; i < n; i++ {
		num += (x[i] - xMean) * (y[i] - yMean)
		denom += (x[i] - xMean) * (x[i] - xMean)
	}
	if denom == 0 {
		return 0.0
	}
	slope := num / denom

	// a zero-mean window falls back to the raw slope
	div := yMean
	if div == 0 {
		div = 1.0
	}

	return slope / div
}
