package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stockpulse/insight/internal/analyze"
	"github.com/stockpulse/insight/internal/api/classifier"
	"github.com/stockpulse/insight/internal/config"
	"github.com/stockpulse/insight/internal/database"
	"github.com/stockpulse/insight/internal/notifier"
	"github.com/stockpulse/insight/internal/sentiment"
	"github.com/stockpulse/insight/models"
)

// analysisOutput is the JSON document printed to stdout.
type analysisOutput struct {
	Ticker             string                  `json:"ticker,omitempty"`
	Volatility         *float64                `json:"volatility"`
	RiskLevel          *models.RiskLevel       `json:"risk_level"`
	ShortTermTrend     *float64                `json:"short_term_trend"`
	Recommendation     models.Recommendation   `json:"recommendation"`
	Note               string                  `json:"note,omitempty"`
	SentimentScoreUsed *float64                `json:"sentiment_score_used"`
	Sentiment          *models.SentimentResult `json:"sentiment,omitempty"`
}

func main() {
	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	ticker := flag.String("ticker", "", "ticker symbol the price series belongs to")
	pricesPath := flag.String("prices", "", "path to a JSON array of chronological closing prices")
	articlesPath := flag.String("articles", "", "path to a JSON array of news articles to classify (needs CLASSIFIER_URL)")
	sentimentsPath := flag.String("sentiments", "", "path to a JSON array of pre-classified {label,score} sentiments")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting risk analyzer")

	if *pricesPath == "" {
		log.Fatal().Msg("-prices is required")
	}
	prices, err := readPrices(*pricesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *pricesPath).Msg("Failed to read prices")
	}

	// 3. Resolve the overall sentiment score, if any input was given
	sentimentScore, sentimentResult := resolveSentiment(ctx, cfg, *articlesPath, *sentimentsPath)

	// 4. Assemble the risk report
	report := analyze.AssembleRiskReport(prices, sentimentScore, analyze.ReportOptions{
		LowVolThreshold:  cfg.RiskLowThreshold,
		HighVolThreshold: cfg.RiskHighThreshold,
		TrendWindow:      cfg.TrendWindow,
	})

	// 5. Print the result
	printReport(*ticker, report, sentimentScore, sentimentResult)

	// 6. Optional sinks
	if cfg.DBHost != "" {
		archiveReport(cfg, *ticker, report, sentimentScore)
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		notifyTelegram(cfg, *ticker, report)
	}
}

// setupSignalHandling configures signal handling for graceful shutdown
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, exiting...")
		cancel()
		os.Exit(0)
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// readPrices loads a chronologically ordered price series from a JSON
// array file.
func readPrices(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var prices []float64
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return prices, nil
}

// resolveSentiment produces the optional overall sentiment score from
// either raw articles (classified via the external service) or a file of
// pre-classified sentiments. Failures are logged and the analysis
// continues without sentiment; absence is a valid neutral-prior input.
func resolveSentiment(ctx context.Context, cfg *config.Config, articlesPath, sentimentsPath string) (*float64, *models.SentimentResult) {
	switch {
	case articlesPath != "":
		if cfg.ClassifierURL == "" {
			log.Warn().Msg("CLASSIFIER_URL not set, skipping article classification")
			return nil, nil
		}
		result, err := classifyArticles(ctx, cfg, articlesPath)
		if err != nil {
			log.Error().Err(err).Msg("Sentiment analysis failed, continuing without sentiment")
			return nil, nil
		}
		return result.Overall.Score, result

	case sentimentsPath != "":
		data, err := os.ReadFile(sentimentsPath)
		if err != nil {
			log.Error().Err(err).Str("path", sentimentsPath).Msg("Failed to read sentiments, continuing without sentiment")
			return nil, nil
		}
		var items []models.ArticleSentiment
		if err := json.Unmarshal(data, &items); err != nil {
			log.Error().Err(err).Msg("Failed to parse sentiments, continuing without sentiment")
			return nil, nil
		}
		overall := sentiment.Aggregate(items)
		return overall.Score, &models.SentimentResult{Overall: overall}

	default:
		return nil, nil
	}
}

// classifyArticles reads articles and runs them through the external
// classifier service.
func classifyArticles(ctx context.Context, cfg *config.Config, path string) (*models.SentimentResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	client := classifier.NewClient(classifier.ClientOptions{
		Endpoint:       cfg.ClassifierURL,
		RequestTimeout: time.Duration(cfg.ClassifierTimeout) * time.Second,
		RequestsPerSec: cfg.ClassifierRPS,
	})

	return sentiment.NewAnalyzer(client).AnalyzeArticles(ctx, articles)
}

// printReport writes the analysis result to stdout as indented JSON.
func printReport(ticker string, report *models.RiskReport, sentimentScore *float64, sentimentResult *models.SentimentResult) {
	out := analysisOutput{
		Ticker:             ticker,
		Volatility:         report.Volatility,
		RiskLevel:          report.RiskLevel,
		ShortTermTrend:     report.ShortTermTrend,
		Recommendation:     report.Recommendation,
		Note:               report.Note,
		SentimentScoreUsed: sentimentScore,
		Sentiment:          sentimentResult,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
	fmt.Println(string(data))
}

// archiveReport stores the report in PostgreSQL.
func archiveReport(cfg *config.Config, ticker string, report *models.RiskReport, sentimentScore *float64) {
	db, err := database.New(database.ConnectionParams{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return
	}
	defer db.Close()

	if err := db.SaveRiskReport(ticker, report, sentimentScore); err != nil {
		log.Error().Err(err).Msg("Failed to archive report")
		return
	}
	log.Info().Str("ticker", ticker).Msg("Report archived")
}

// notifyTelegram pushes the report to the configured chat.
func notifyTelegram(cfg *config.Config, ticker string, report *models.RiskReport) {
	tg, err := notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create telegram notifier")
		return
	}
	if err := tg.SendRiskReport(ticker, report); err != nil {
		log.Error().Err(err).Msg("Failed to send telegram notification")
		return
	}
	log.Info().Str("ticker", ticker).Msg("Report sent to telegram")
}
