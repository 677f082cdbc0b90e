package sentiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stockpulse/insight/models"
)

// Analyzer runs the injected per-text classifier over a batch of articles
// and aggregates the results. The classifier itself (model weights,
// caching) lives behind the interface.
type Analyzer struct {
	classifier models.SentimentClassifier
	logger     zerolog.Logger
}

// NewAnalyzer creates an analyzer around a classifier implementation.
func NewAnalyzer(classifier models.SentimentClassifier) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		logger:     log.With().Str("component", "sentiment_analyzer").Logger(),
	}
}

// AnalyzeArticles classifies every article and returns per-article
// sentiments plus the overall aggregate. A classifier failure aborts the
// whole batch. Per-article scores are rounded to 4 decimals for output;
// the aggregate consumes the unrounded values.
func (a *Analyzer) AnalyzeArticles(ctx context.Context, articles []models.Article) (*models.SentimentResult, error) {
	if len(articles) == 0 {
		return &models.SentimentResult{PerArticle: []models.ScoredArticle{}}, nil
	}

	perArticle := make([]models.ScoredArticle, 0, len(articles))
	sentiments := make([]models.ArticleSentiment, 0, len(articles))
	for _, article := range articles {
		sent, err := a.classifier.Classify(ctx, classifierInput(article))
		if err != nil {
			a.logger.Error().Err(err).Str("title", article.Title).Msg("Classifier call failed")
			return nil, fmt.Errorf("classifying article: %w", err)
		}
		sentiments = append(sentiments, sent)

		sent.Score, _ = stats.Round(sent.Score, 4)
		perArticle = append(perArticle, models.ScoredArticle{Article: article, Sentiment: sent})
	}

	result := &models.SentimentResult{
		PerArticle: perArticle,
		Overall:    Aggregate(sentiments),
	}
	a.logger.Debug().Int("count", len(perArticle)).Msg("Analyzed articles")
	return result, nil
}

// classifierInput builds the text sent to the classifier: the title with
// the description appended for context, falling back to the URL when both
// are empty.
func classifierInput(article models.Article) string {
	title := strings.TrimSpace(article.Title)
	desc := strings.TrimSpace(article.Description)

	switch {
	case title != "" && desc != "":
		return title + ". " + desc
	case title != "":
		return title
	case desc != "":
		return desc
	default:
		return article.URL
	}
}
