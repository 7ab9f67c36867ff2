package config

import (
	"testing"
	"time"

	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS default: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.FeedEnabled {
		t.Fatalf("expected feed disabled by default")
	}
	if cfg.SyncWorkers != 3 {
		t.Fatalf("unexpected SyncWorkers: %d", cfg.SyncWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_FeedRequiresAPIKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PROJECTIONS_FEED_ENABLED", "true")
	t.Setenv("PROJECTIONS_FEED_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PROJECTIONS_FEED_ENABLED=true without API key")
	}
}

func TestLoad_FeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PROJECTIONS_FEED_ENABLED", "true")
	t.Setenv("PROJECTIONS_FEED_API_KEY", "key-123")
	t.Setenv("PROJECTIONS_FEED_BASE_URL", "https://feed.example.com/nfl")
	t.Setenv("PROJECTIONS_FEED_TIMEOUT", "7s")
	t.Setenv("PROJECTIONS_FEED_MAX_RETRIES", "4")
	t.Setenv("PROJECTIONS_FEED_RATE_PER_SECOND", "1.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FeedEnabled || cfg.FeedAPIKey != "key-123" {
		t.Fatalf("unexpected feed config: enabled=%v key=%q", cfg.FeedEnabled, cfg.FeedAPIKey)
	}
	if cfg.FeedBaseURL != "https://feed.example.com/nfl" {
		t.Fatalf("unexpected FeedBaseURL: %q", cfg.FeedBaseURL)
	}
	if cfg.FeedTimeout != 7*time.Second {
		t.Fatalf("unexpected FeedTimeout: %s", cfg.FeedTimeout)
	}
	if cfg.FeedMaxRetries != 4 {
		t.Fatalf("unexpected FeedMaxRetries: %d", cfg.FeedMaxRetries)
	}
	if cfg.FeedRatePerSecond != 1.5 {
		t.Fatalf("unexpected FeedRatePerSecond: %v", cfg.FeedRatePerSecond)
	}
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "cache ttl", key: "CACHE_TTL", value: "not-a-duration"},
		{name: "cache ttl non-positive", key: "CACHE_TTL", value: "-1m"},
		{name: "read timeout", key: "HTTP_READ_TIMEOUT", value: "ten seconds"},
		{name: "feed timeout", key: "PROJECTIONS_FEED_TIMEOUT", value: "0s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_SyncWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SYNC_WORKERS=0")
	}
}

func TestLoad_CORSListParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origin: %q", cfg.CORSAllowedOrigins[1])
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  logging.Level
	}{
		{value: "debug", want: logging.LevelDebug},
		{value: "WARN", want: logging.LevelWarn},
		{value: "warning", want: logging.LevelWarn},
		{value: "error", want: logging.LevelError},
		{value: "anything-else", want: logging.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLogLevel(tc.value); got != tc.want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
