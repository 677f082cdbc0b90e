package analyze

import (
	"github.com/montanaflynn/stats"

	"github.com/stockpulse/insight/internal/calculate"
	"github.com/stockpulse/insight/models"
)

// DefaultTrendWindow is the number of trailing prices the short-term trend
// looks at.
const DefaultTrendWindow = 5

// ReportOptions carries the tunable parts of report assembly. Zero-value
// fields fall back to the defaults.
type ReportOptions struct {
	LowVolThreshold  float64
	HighVolThreshold float64
	TrendWindow      int
}

// DefaultReportOptions returns the calibrated defaults.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		LowVolThreshold:  DefaultLowVolThreshold,
		HighVolThreshold: DefaultHighVolThreshold,
		TrendWindow:      DefaultTrendWindow,
	}
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.LowVolThreshold == 0 {
		o.LowVolThreshold = DefaultLowVolThreshold
	}
	if o.HighVolThreshold == 0 {
		o.HighVolThreshold = DefaultHighVolThreshold
	}
	if o.TrendWindow == 0 {
		o.TrendWindow = DefaultTrendWindow
	}
	return o
}

// AssembleRiskReport produces the full risk report for a chronologically
// ordered price series and an optional overall sentiment score. An empty
// series short-circuits to a null report with a Hold recommendation.
// Scoring always consumes unrounded values; rounding here is presentation
// only.
func AssembleRiskReport(prices []float64, sentiment *float64, opts ReportOptions) *models.RiskReport {
	if len(prices) == 0 {
		return &models.RiskReport{
			Recommendation: models.ActionHold,
			Note:           "No historical prices provided",
		}
	}

	opts = opts.withDefaults()

	vol := calculate.Volatility(prices)
	level := RiskLevelFromVolatility(vol, opts.LowVolThreshold, opts.HighVolThreshold)
	trend := calculate.ShortTermTrend(prices, opts.TrendWindow)
	rec := RecommendAction(vol, sentiment, trend, opts.LowVolThreshold, opts.HighVolThreshold)

	displayVol, _ := stats.Round(vol*100, 2) // percent for display
	displayTrend, _ := stats.Round(trend, 6)

	return &models.RiskReport{
		Volatility:     &displayVol,
		RiskLevel:      &level,
		ShortTermTrend: &displayTrend,
		Recommendation: rec,
	}
}
