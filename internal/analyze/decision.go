package analyze

import "github.com/stockpulse/insight/models"

// neutralSentiment is the prior used when no sentiment is available.
const neutralSentiment = 0.5

// RecommendAction combines sentiment, short-term trend and volatility into
// a Buy/Hold/Sell signal via integer scoring. Missing sentiment counts as
// neutral, and scores of exactly +1 or -1 stay inside the Hold band. The
// low/high thresholds feed the volatility risk bucket.
func RecommendAction(volatility float64, sentiment *float64, trend float64, low, high float64) models.Recommendation {
	score := 0

	sent := neutralSentiment
	if sentiment != nil {
		sent = *sentiment
	}

	switch {
	case sent > 0.70: // very positive
		score += 3
	case sent > 0.55:
		score += 2
	case sent > 0.52:
		score++
	case sent < 0.30: // very negative
		score -= 3
	case sent < 0.45:
		score -= 2
	case sent < 0.48:
		score--
	}

	switch {
	case trend > 0.005: // strong uptrend, >0.5% per day
		score += 3
	case trend > 0.002:
		score += 2
	case trend > 0.0005:
		score++
	case trend < -0.005: // strong downtrend
		score -= 3
	case trend < -0.002:
		score -= 2
	case trend < -0.0005:
		score--
	}

	// High volatility penalizes a would-be buy harder than a would-be
	// sell; low volatility only rewards a score that is already positive.
	switch RiskLevelFromVolatility(volatility, low, high) {
	case models.RiskHigh:
		if score > 0 {
			score -= 2
		} else {
			score--
		}
	case models.RiskLow:
		if score > 0 {
			score++
		}
	}

	switch {
	case score >= 2:
		return models.ActionBuy
	case score <= -2:
		return models.ActionSell
	default:
		return models.ActionHold
	}
}
