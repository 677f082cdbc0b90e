package sentiment

import (
	"github.com/montanaflynn/stats"

	"github.com/stockpulse/insight/models"
)

// labelThreshold is the band on the mean signed score inside which the
// aggregate counts as neutral.
const labelThreshold = 0.15

// Aggregate reduces per-article sentiments into one overall label and
// score. Positive labels contribute +score, negative labels -score and
// neutral 0; the mean signed value is rescaled from [-1,1] to [0,1].
// Empty input yields nil label and score.
func Aggregate(items []models.ArticleSentiment) models.OverallSentiment {
	if len(items) == 0 {
		return models.OverallSentiment{}
	}

	signed := make([]float64, 0, len(items))
	for _, item := range items {
		switch item.Label {
		case models.LabelPositive:
			signed = append(signed, item.Score)
		case models.LabelNegative:
			signed = append(signed, -item.Score)
		default:
			signed = append(signed, 0.0)
		}
	}

	meanSigned, err := stats.Mean(signed)
	if err != nil {
		meanSigned = 0.0
	}

	score, _ := stats.Round((meanSigned+1)/2, 4)

	label := models.LabelNeutral
	if meanSigned >= labelThreshold {
		label = models.LabelPositive
	} else if meanSigned <= -labelThreshold {
		label = models.LabelNegative
	}

	return models.OverallSentiment{Label: &label, Score: &score}
}
