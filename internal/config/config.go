package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	DatabaseURL     string
	YahooURL        string
	HTTPTimeout     time.Duration
	SpreadsheetID   string
	GoogleCredsJSON string
}

// Load reads configuration from environment variables with sensible defaults.
// SUPABASE_URL and SUPABASE_ANON_KEY are required for any remote read or
// write; when absent the holdings and ledger components degrade to logged
// no-ops rather than failing the run.
func Load() Config {
	return Config{
		SupabaseURL:     envOrDefault("SUPABASE_URL", ""),
		SupabaseAnonKey: envOrDefault("SUPABASE_ANON_KEY", ""),
		DatabaseURL:     envOrDefault("DATABASE_URL", ""),
		YahooURL:        envOrDefault("YAHOO_URL", "https://query1.finance.yahoo.com"),
		HTTPTimeout:     envOrDefaultDuration("HTTP_TIMEOUT", 10*time.Second),
		SpreadsheetID:   envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		GoogleCredsJSON: envOrDefault("GOOGLE_CREDENTIALS_JSON", ""),
	}
}

// HasSupabase reports whether the Supabase REST credentials are configured.
func (c Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
