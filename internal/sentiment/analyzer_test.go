package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpulse/insight/models"
)

type stubClassifier struct {
	byText map[string]models.ArticleSentiment
	err    error
	calls  []string
}

func (s *stubClassifier) Classify(_ context.Context, text string) (models.ArticleSentiment, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return models.ArticleSentiment{}, s.err
	}
	return s.byText[text], nil
}

func TestAnalyzeArticles(t *testing.T) {
	stub := &stubClassifier{byText: map[string]models.ArticleSentiment{
		"Apple beats estimates. Record services quarter": {Label: models.LabelPositive, Score: 0.91234567},
		"Patent lawsuit filed":                           {Label: models.LabelNegative, Score: 0.8},
	}}

	result, err := NewAnalyzer(stub).AnalyzeArticles(context.Background(), []models.Article{
		{Title: "Apple beats estimates", Description: "Record services quarter"},
		{Title: "Patent lawsuit filed"},
	})
	require.NoError(t, err)
	require.Len(t, result.PerArticle, 2)

	// per-article score is rounded to 4 decimals for output
	assert.InDelta(t, 0.9123, result.PerArticle[0].Sentiment.Score, 1e-9)
	assert.Equal(t, models.LabelPositive, result.PerArticle[0].Sentiment.Label)
	assert.Equal(t, "Apple beats estimates", result.PerArticle[0].Title)

	// mean signed is (0.91234567 - 0.8) / 2, inside the neutral band
	require.NotNil(t, result.Overall.Label)
	require.NotNil(t, result.Overall.Score)
	assert.Equal(t, models.LabelNeutral, *result.Overall.Label)
	assert.InDelta(t, 0.5281, *result.Overall.Score, 1e-4)
}

func TestAnalyzeArticlesEmpty(t *testing.T) {
	stub := &stubClassifier{}

	result, err := NewAnalyzer(stub).AnalyzeArticles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.PerArticle)
	assert.Nil(t, result.Overall.Label)
	assert.Nil(t, result.Overall.Score)
	assert.Empty(t, stub.calls)
}

func TestAnalyzeArticlesClassifierError(t *testing.T) {
	stub := &stubClassifier{err: errors.New("model unavailable")}

	result, err := NewAnalyzer(stub).AnalyzeArticles(context.Background(), []models.Article{
		{Title: "Some headline"},
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "model unavailable")
}

func TestClassifierInput(t *testing.T) {
	tests := []struct {
		name     string
		article  models.Article
		expected string
	}{
		{
			name:     "title and description",
			article:  models.Article{Title: "Shares surge", Description: "Guidance raised"},
			expected: "Shares surge. Guidance raised",
		},
		{
			name:     "title only",
			article:  models.Article{Title: "Shares surge"},
			expected: "Shares surge",
		},
		{
			name:     "description only",
			article:  models.Article{Description: "Guidance raised"},
			expected: "Guidance raised",
		},
		{
			name:     "url as last resort",
			article:  models.Article{Title: "  ", URL: "https://example.com/a"},
			expected: "https://example.com/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifierInput(tt.article))
		})
	}
}
