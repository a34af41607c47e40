package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Cortex holds settings for the Snowflake Cortex completion endpoint.
// An empty AccountURL or APIKey disables the integration and the app
// runs on the offline parser.
type Cortex struct {
	AccountURL string
	APIKey     string
	Model      string
}

// Enabled reports whether the Cortex integration is configured.
func (c Cortex) Enabled() bool {
	return c.AccountURL != "" && c.APIKey != ""
}

// Config keeps runtime settings for the service.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	Cortex         Cortex
	TelegramToken  string
	TelegramChatID int64
	DigestTime     string
}

// TelegramEnabled reports whether the notification channel is configured.
func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:      strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DigestTime:    strings.TrimSpace(os.Getenv("DIGEST_TIME")),
		Cortex: Cortex{
			AccountURL: strings.TrimSpace(os.Getenv("CORTEX_ACCOUNT_URL")),
			APIKey:     strings.TrimSpace(os.Getenv("CORTEX_API_KEY")),
			Model:      strings.TrimSpace(os.Getenv("CORTEX_MODEL")),
		},
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "focusflow.db"
	}
	if cfg.DigestTime == "" {
		cfg.DigestTime = "21:00"
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	if (cfg.TelegramToken == "") != (cfg.TelegramChatID == 0) {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}

	return cfg, nil
}
