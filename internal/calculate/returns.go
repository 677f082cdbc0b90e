package calculate

// DailyReturns computes simple daily returns (p_t / p_{t-1}) - 1 over a
// chronologically ordered price series. A zero previous price contributes
// 0.0 for that step instead of dividing by zero. Result length is
// len(prices)-1, or 0 for fewer than two prices.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			returns = append(returns, 0.0)
			continue
		}
		returns = append(returns, (prices[i]/prev)-1.0)
	}

	return returns
}
