package models

import "context"

// SentimentClassifier maps a text to a sentiment label and confidence
// score. Implementations wrap an external model service; the engine never
// loads model weights itself.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (ArticleSentiment, error)
}
