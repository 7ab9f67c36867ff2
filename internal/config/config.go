package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	DBURL              string
	CacheEnabled       bool
	CacheTTL           time.Duration
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	PprofEnabled       bool
	PprofAddr          string
	UptraceEnabled     bool
	UptraceDSN         string
	PyroscopeEnabled   bool
	PyroscopeServer    string
	PyroscopeAppName   string
	PyroscopeAuthToken string
	PyroscopeRate      time.Duration
	FeedEnabled        bool
	FeedBaseURL        string
	FeedAPIKey         string
	FeedTimeout        time.Duration
	FeedMaxRetries     int
	FeedRatePerSecond  float64
	SyncWorkers        int
	InternalJobToken   string
	LogLevel           logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	feedEnabled, err := strconv.ParseBool(getEnv("PROJECTIONS_FEED_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROJECTIONS_FEED_ENABLED: %w", err)
	}
	feedTimeout, err := time.ParseDuration(getEnv("PROJECTIONS_FEED_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROJECTIONS_FEED_TIMEOUT: %w", err)
	}
	if feedTimeout <= 0 {
		return Config{}, fmt.Errorf("PROJECTIONS_FEED_TIMEOUT must be > 0")
	}
	feedMaxRetries, err := getEnvAsInt("PROJECTIONS_FEED_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROJECTIONS_FEED_MAX_RETRIES: %w", err)
	}
	if feedMaxRetries < 0 {
		return Config{}, fmt.Errorf("PROJECTIONS_FEED_MAX_RETRIES must be >= 0")
	}
	feedRate, err := strconv.ParseFloat(getEnv("PROJECTIONS_FEED_RATE_PER_SECOND", "2"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROJECTIONS_FEED_RATE_PER_SECOND: %w", err)
	}
	if feedRate <= 0 {
		return Config{}, fmt.Errorf("PROJECTIONS_FEED_RATE_PER_SECOND must be > 0")
	}
	feedBaseURL := strings.TrimSpace(getEnv("PROJECTIONS_FEED_BASE_URL", "https://api.fantasypros.com/public/v2/json/nfl"))
	feedAPIKey := strings.TrimSpace(getEnv("PROJECTIONS_FEED_API_KEY", ""))
	if feedEnabled && feedAPIKey == "" {
		return Config{}, fmt.Errorf("PROJECTIONS_FEED_API_KEY is required when PROJECTIONS_FEED_ENABLED=true")
	}

	syncWorkers, err := getEnvAsInt("SYNC_WORKERS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_WORKERS: %w", err)
	}
	if syncWorkers < 1 {
		return Config{}, fmt.Errorf("SYNC_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "draft-assistant"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		CacheEnabled:       cacheEnabled,
		CacheTTL:           cacheTTL,
		CORSAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		PprofEnabled:       pprofEnabled,
		PprofAddr:          pprofAddr,
		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		PyroscopeEnabled:   pyroscopeEnabled,
		PyroscopeServer:    pyroscopeServer,
		PyroscopeAppName:   getEnv("PYROSCOPE_APP_NAME", "draft-assistant"),
		PyroscopeAuthToken: strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeRate:      pyroscopeRate,
		FeedEnabled:        feedEnabled,
		FeedBaseURL:        feedBaseURL,
		FeedAPIKey:         feedAPIKey,
		FeedTimeout:        feedTimeout,
		FeedMaxRetries:     feedMaxRetries,
		FeedRatePerSecond:  feedRate,
		SyncWorkers:        syncWorkers,
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseAppEnv(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case EnvDev, EnvStaging, EnvProd:
		return normalized, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: expected dev, staging or prod", value)
	}
}

func parseLogLevel(value string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
