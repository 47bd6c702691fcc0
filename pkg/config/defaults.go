package config

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/homepage/pkg/logger"
	"github.com/dmitrymomot/homepage/pkg/preference"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Site: SiteConfig{
			Title:         "Homepage",
			StaticBase:    "/static",
			PrivacyNotice: preference.DefaultNoticeText,
			CacheTTL:      10 * time.Minute,
		},
		Cookies: CookieConfig{
			SameSite: "lax",
		},
		Toolbox: ToolboxConfig{
			FromRadix:   10,
			ToRadix:     16,
			CaesarShift: 3,
		},
		Log: logger.Config{
			Level:  slog.LevelInfo,
			Format: logger.FormatJSON,
			Sentry: logger.SentryConfig{
				MinLevel: slog.LevelWarn,
			},
		},
	}
}
