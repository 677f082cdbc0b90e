package calculate

import "github.com/montanaflynn/stats"

// Volatility estimates dispersion as the standard deviation of daily
// returns. The sample form (N-1) is used when more than one return exists;
// a single return uses the population form so the variance stays defined.
// Fewer than two prices means zero dispersion, not an error.
func Volatility(prices []float64) float64 {
	if len(prices) < 2 {
		return 0.0
	}

	returns := DailyReturns(prices)

	var (
		vol float64
		err error
	)
	if len(returns) > 1 {
		vol, err = stats.StandardDeviationSample(returns)
	} else {
		vol, err = stats.StandardDeviationPopulation(returns)
	}
	if err != nil {
		return 0.0
	}

	return vol
}
