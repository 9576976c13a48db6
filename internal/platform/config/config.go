package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "300-M"

	SessionCookieName   string
	SessionIdleTimeout  time.Duration
	SessionSweepEvery   time.Duration
	SessionCookieSecure bool

	CompanyName    string
	ReportTitle    string
	ReportFilename string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("SESSION_COOKIE_NAME", "hrd_session")
	v.SetDefault("SESSION_IDLE_TIMEOUT", "2h")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "5m")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("COMPANY_NAME", "Erode Corporation")
	v.SetDefault("REPORT_TITLE", "Payment Details Report")
	v.SetDefault("REPORT_FILENAME", "payment_report.pdf")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.SessionCookieName = v.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "hrd_session"
	}
	cfg.SessionCookieSecure = v.GetBool("SESSION_COOKIE_SECURE")
	cfg.SessionIdleTimeout = parseDuration(v.GetString("SESSION_IDLE_TIMEOUT"), "SESSION_IDLE_TIMEOUT", 2*time.Hour)
	cfg.SessionSweepEvery = parseDuration(v.GetString("SESSION_SWEEP_INTERVAL"), "SESSION_SWEEP_INTERVAL", 5*time.Minute)

	cfg.CompanyName = v.GetString("COMPANY_NAME")
	cfg.ReportTitle = v.GetString("REPORT_TITLE")
	cfg.ReportFilename = v.GetString("REPORT_FILENAME")
	if !strings.HasSuffix(cfg.ReportFilename, ".pdf") {
		log.Printf("Warning: REPORT_FILENAME ('%s') has no .pdf extension.\n", cfg.ReportFilename)
	}

	return cfg, nil
}

func parseDuration(raw, name string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", name, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
