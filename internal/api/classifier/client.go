package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platformhttp "github.com/stockpulse/insight/internal/platform/http"
	"github.com/stockpulse/insight/models"
)

// Client calls an external text-classification service that maps a text
// to a sentiment label and confidence score. It implements
// models.SentimentClassifier; the model itself runs elsewhere.
type Client struct {
	endpoint   string
	httpClient *platformhttp.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new classifier client.
type ClientOptions struct {
	Endpoint        string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

// NewClient creates a new classifier client with rate limiting and
// retries.
func NewClient(opts ClientOptions) *Client {
	return &Client{
		endpoint: opts.Endpoint,
		httpClient: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:         opts.RequestTimeout,
			RequestsPerSec:  opts.RequestsPerSec,
			MaxRetryTimeout: opts.MaxRetryTimeout,
		}),
		logger: log.With().Str("component", "classifier_client").Logger(),
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends one text to the classification service.
func (c *Client) Classify(ctx context.Context, text string) (models.ArticleSentiment, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return models.ArticleSentiment{}, fmt.Errorf("encoding request: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return models.ArticleSentiment{}, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ArticleSentiment{}, fmt.Errorf("reading response body: %w", err)
	}

	var data classifyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return models.ArticleSentiment{}, fmt.Errorf("parsing JSON: %w", err)
	}

	// the engine compares lower-case labels; normalize at the boundary
	return models.ArticleSentiment{
		Label: strings.ToLower(data.Label),
		Score: data.Score,
	}, nil
}
