package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// Database
	DatabaseURL string

	// Redis, optional. When set the rate limiter shares its counters through it.
	RedisURL string

	// Rate limiting, requests per minute per IP
	RateLimitMax int

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Lexicons
	MasculineWordsFile string // empty uses the built-in list
	FeminineWordsFile  string

	// Re-scoring job, a robfig/cron spec. "off" disables the job.
	RescoreSchedule string

	// Logging
	LogLevel  string
	LogFormat string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Gender Decoder"
	SiteTagline string
	SiteFooter  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":3000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:           getEnv("VIEWS_DIR", "./views"),
		StaticDir:          getEnv("STATIC_DIR", "./static"),
		DatabaseURL:        getEnv("DATABASE_URL", "postgres://localhost:5432/genderdecoder?sslmode=disable"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitMax:       getEnvInt("RATE_LIMIT_MAX", 100),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		MasculineWordsFile: getEnv("MASCULINE_WORDS_FILE", ""),
		FeminineWordsFile:  getEnv("FEMININE_WORDS_FILE", ""),
		RescoreSchedule:    getEnv("RESCORE_SCHEDULE", "@every 1h"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),

		SiteTitle:   getEnv("SITE_TITLE", "Gender Decoder"),
		SiteTagline: getEnv("SITE_TAGLINE", "Find subtle gender-coding in job ads"),
		SiteFooter:  getEnv("SITE_FOOTER", "Gender Decoder - word lists from research on gendered wording in job advertisements"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// RescoreEnabled reports whether the background re-scoring job should run.
func (c *Config) RescoreEnabled() bool {
	return c.RescoreSchedule != "" && c.RescoreSchedule != "off"
}
