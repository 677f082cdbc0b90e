package analyze

import "github.com/stockpulse/insight/models"

// Default daily-volatility thresholds. Roughly: stable large caps sit
// below 1.2%, normal single stocks between 1.2% and 3%, volatile names
// above 3%.
const (
	DefaultLowVolThreshold  = 0.012
	DefaultHighVolThreshold = 0.030
)

// RiskLevelFromVolatility maps volatility onto Low/Medium/High using
// half-open intervals: [0, low) is Low, [low, high) is Medium and
// [high, inf) is High.
func RiskLevelFromVolatility(vol, low, high float64) models.RiskLevel {
	if vol < low {
		return models.RiskLow
	}
	if vol < high {
		return models.RiskMedium
	}
	return models.RiskHigh
}
