/*
Package config loads papersum settings from the environment and an optional .env file.
*/
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultBaseURL  = "https://arxiv.org"
	DefaultRevision = 1
	DefaultTimeout  = 60 * time.Second
)

// EmailConfig holds SMTP settings for delivering a summary by email.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (c EmailConfig) Enabled() bool {
	return c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

// Sender returns the From address, falling back to the SMTP user.
func (c EmailConfig) Sender() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.SMTPUser
}

type Config struct {
	// The API key is not validated here. A missing key is reported by the
	// summarizer when it is first used.
	GeminiAPIKey string
	GeminiModel  string

	ArxivBaseURL  string
	ArxivRevision int
	HTTPTimeout   time.Duration

	LogLevel string

	Email EmailConfig
}

// Load reads the .env file in the working directory if one exists, then the
// process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		GeminiAPIKey:  firstNonEmpty(os.Getenv("GEMINI_KEY"), os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", DefaultModel),
		ArxivBaseURL:  getEnvOrDefault("ARXIV_BASE_URL", DefaultBaseURL),
		ArxivRevision: getEnvOrDefaultInt("ARXIV_REVISION", DefaultRevision),
		HTTPTimeout:   time.Duration(getEnvOrDefaultInt("HTTP_TIMEOUT_SECONDS", int(DefaultTimeout/time.Second))) * time.Second,
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		Email: EmailConfig{
			SMTPServer: getEnvOrDefault("SMTP_SERVER", "smtp.gmail.com"),
			SMTPPort:   getEnvOrDefaultInt("SMTP_PORT", 587),
			SMTPUser:   os.Getenv("SMTP_USER"),
			SMTPPass:   os.Getenv("SMTP_PASS"),
			FromEmail:  os.Getenv("FROM_EMAIL"),
			ToEmail:    os.Getenv("TO_EMAIL"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
