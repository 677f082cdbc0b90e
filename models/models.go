package models

// RiskLevel buckets daily-return volatility.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Recommendation is the discrete trade signal derived from sentiment,
// trend and volatility.
type Recommendation string

const (
	ActionBuy  Recommendation = "Buy"
	ActionHold Recommendation = "Hold"
	ActionSell Recommendation = "Sell"
)

// Sentiment labels as produced by the external text classifier. Callers
// normalize casing at the boundary; everything inside the engine compares
// against these lower-case values.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// RiskReport is the assembled result for one price series. Numeric fields
// are nil when no prices were provided; Volatility is display-scaled to
// percent. Never mutated after construction.
type RiskReport struct {
	Volatility     *float64       `json:"volatility"`
	RiskLevel      *RiskLevel     `json:"risk_level"`
	ShortTermTrend *float64       `json:"short_term_trend"`
	Recommendation Recommendation `json:"recommendation"`
	Note           string         `json:"note,omitempty"`
}

// Article is a news item fetched by an upstream provider.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// ArticleSentiment is the classifier's verdict for one text: a label and
// the confidence of that label in [0,1].
type ArticleSentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ScoredArticle pairs an article with its sentiment.
type ScoredArticle struct {
	Article
	Sentiment ArticleSentiment `json:"sentiment"`
}

// OverallSentiment aggregates a batch of article sentiments. Label and
// Score are nil when there was nothing to aggregate.
type OverallSentiment struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

// SentimentResult holds per-article sentiments plus the aggregate.
type SentimentResult struct {
	PerArticle []ScoredArticle  `json:"per_article"`
	Overall    OverallSentiment `json:"overall"`
}
