package server

import (
	"os"
	"strings"
)

// Config holds the server configuration, read from the environment
type Config struct {
	// Address the HTTP server listens on
	Addr string
	// Paths of the two SQLite stores
	BookDBPath    string
	ResultsDBPath string
	// External speech-analysis service
	AnalysisURL   string
	AnalysisModel string
	// Language code for TTS reference audio
	TTSLanguage string
	// Allowed CORS origins; "*" allows all
	AllowOrigins []string
}

// LoadConfig reads the configuration from environment variables, falling
// back to development defaults
func LoadConfig() *Config {
	return &Config{
		Addr:          envOr("ADDR", ":5000"),
		BookDBPath:    envOr("BOOK_DB_PATH", "data/book.db"),
		ResultsDBPath: envOr("RESULTS_DB_PATH", "data/results.db"),
		AnalysisURL:   envOr("ANALYSIS_API_URL", "http://localhost:8001/analyze"),
		AnalysisModel: envOr("ANALYSIS_MODEL", "random_forest"),
		TTSLanguage:   envOr("TTS_LANGUAGE", "en"),
		AllowOrigins:  strings.Split(envOr("CORS_ORIGINS", "*"), ","),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
