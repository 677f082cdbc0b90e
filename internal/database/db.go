package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/stockpulse/insight/models"
)

// DB represents a database connection used to archive assembled reports.
// The engine itself stays stateless; archiving happens in the caller.
type DB struct {
	*sql.DB
}

// ConnectionParams holds PostgreSQL connection parameters
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// New creates a new database connection
func New(params ConnectionParams) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS risk_reports (
			id SERIAL PRIMARY KEY,
			ticker TEXT NOT NULL,
			volatility DOUBLE PRECISION,
			risk_level TEXT,
			short_term_trend DOUBLE PRECISION,
			recommendation TEXT NOT NULL,
			sentiment_score DOUBLE PRECISION,
			note TEXT,
			created_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// SaveRiskReport archives an assembled report together with the sentiment
// score that fed the recommendation. Nil numeric fields are stored as
// NULL.
func (db *DB) SaveRiskReport(ticker string, report *models.RiskReport, sentimentScore *float64) error {
	var level *string
	if report.RiskLevel != nil {
		s := string(*report.RiskLevel)
		level = &s
	}

	_, err := db.Exec(`
		INSERT INTO risk_reports
			(ticker, volatility, risk_level, short_term_trend, recommendation, sentiment_score, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ticker, report.Volatility, level, report.ShortTermTrend,
		string(report.Recommendation), sentimentScore, report.Note, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting risk report: %w", err)
	}

	return nil
}
