package analyze

import (
	"testing"

	"github.com/stockpulse/insight/models"
)

func TestRiskLevelFromVolatility(t *testing.T) {
	tests := []struct {
		name     string
		vol      float64
		expected models.RiskLevel
	}{
		{name: "zero volatility", vol: 0.0, expected: models.RiskLow},
		{name: "just below low threshold", vol: 0.0119999, expected: models.RiskLow},
		{name: "exactly low threshold", vol: 0.012, expected: models.RiskMedium},
		{name: "mid band", vol: 0.02, expected: models.RiskMedium},
		{name: "just below high threshold", vol: 0.0299999, expected: models.RiskMedium},
		{name: "exactly high threshold", vol: 0.030, expected: models.RiskHigh},
		{name: "extreme volatility", vol: 0.5, expected: models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskLevelFromVolatility(tt.vol, DefaultLowVolThreshold, DefaultHighVolThreshold)
			if got != tt.expected {
				t.Errorf("RiskLevelFromVolatility(%v) = %v, want %v", tt.vol, got, tt.expected)
			}
		})
	}
}

func TestRiskLevelFromVolatilityCustomThresholds(t *testing.T) {
	if got := RiskLevelFromVolatility(0.05, 0.04, 0.10); got != models.RiskMedium {
		t.Errorf("RiskLevelFromVolatility(0.05, 0.04, 0.10) = %v, want Medium", got)
	}
	if got := RiskLevelFromVolatility(0.03, 0.04, 0.10); got != models.RiskLow {
		t.Errorf("RiskLevelFromVolatility(0.03, 0.04, 0.10) = %v, want Low", got)
	}
}
