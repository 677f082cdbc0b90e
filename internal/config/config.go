package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	LogLevel string

	// risk engine tuning
	RiskLowThreshold  float64
	RiskHighThreshold float64
	TrendWindow       int

	// external classifier service
	ClassifierURL     string
	ClassifierTimeout int // seconds
	ClassifierRPS     int

	// optional sinks
	TelegramBotToken string
	TelegramChatID   int64

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		RiskLowThreshold:  getEnvFloatWithDefault("RISK_LOW_THRESHOLD", 0.012),
		RiskHighThreshold: getEnvFloatWithDefault("RISK_HIGH_THRESHOLD", 0.030),
		TrendWindow:       getEnvIntWithDefault("TREND_WINDOW", 5),
		ClassifierURL:     os.Getenv("CLASSIFIER_URL"),
		ClassifierTimeout: getEnvIntWithDefault("CLASSIFIER_TIMEOUT", 30),
		ClassifierRPS:     getEnvIntWithDefault("CLASSIFIER_RPS", 5),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            getEnvWithDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSSLMode:         getEnvWithDefault("DB_SSLMODE", "disable"),
	}

	if cfg.RiskLowThreshold >= cfg.RiskHighThreshold {
		return nil, fmt.Errorf("RISK_LOW_THRESHOLD (%v) must be below RISK_HIGH_THRESHOLD (%v)",
			cfg.RiskLowThreshold, cfg.RiskHighThreshold)
	}

	return cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
