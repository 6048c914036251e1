package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config contains runtime configuration values.
type Config struct {
	HTTPAddr        string
	OpenAIAPIKey    string
	OpenAIURL       string
	OpenAIModel     string
	FeedTimeout     time.Duration
	KeywordTimeout  time.Duration
	SummaryTimeout  time.Duration
	FeedProbeCron   string
	LogLevel        string
	ShutdownTimeout time.Duration

	level slog.Level
}

// ProbeOff disables the feed probe when used as FEED_PROBE_CRON.
const ProbeOff = "off"

const (
	defaultHTTPAddr        = ":8000"
	defaultOpenAIURL       = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel     = "gpt-3.5-turbo"
	defaultFeedTimeout     = 10 * time.Second
	defaultKeywordTimeout  = 20 * time.Second
	defaultSummaryTimeout  = 30 * time.Second
	defaultFeedProbeCron   = "@every 30m"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// Load builds a Config from a .env file, if present, and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_URL", defaultOpenAIURL)
	v.SetDefault("OPENAI_MODEL", defaultOpenAIModel)
	v.SetDefault("FEED_TIMEOUT", defaultFeedTimeout)
	v.SetDefault("KEYWORD_TIMEOUT", defaultKeywordTimeout)
	v.SetDefault("SUMMARY_TIMEOUT", defaultSummaryTimeout)
	v.SetDefault("FEED_PROBE_CRON", defaultFeedProbeCron)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPAddr:        strings.TrimSpace(v.GetString("HTTP_ADDR")),
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		OpenAIURL:       strings.TrimSpace(v.GetString("OPENAI_URL")),
		OpenAIModel:     strings.TrimSpace(v.GetString("OPENAI_MODEL")),
		FeedTimeout:     durationOrDefault(v, "FEED_TIMEOUT", defaultFeedTimeout),
		KeywordTimeout:  durationOrDefault(v, "KEYWORD_TIMEOUT", defaultKeywordTimeout),
		SummaryTimeout:  durationOrDefault(v, "SUMMARY_TIMEOUT", defaultSummaryTimeout),
		FeedProbeCron:   strings.TrimSpace(v.GetString("FEED_PROBE_CRON")),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		ShutdownTimeout: durationOrDefault(v, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.OpenAIURL == "" {
		cfg.OpenAIURL = defaultOpenAIURL
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = defaultOpenAIModel
	}

	if err := cfg.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if cfg.ProbeEnabled() {
		if _, err := cron.ParseStandard(cfg.FeedProbeCron); err != nil {
			return nil, fmt.Errorf("FEED_PROBE_CRON %q: %w", cfg.FeedProbeCron, err)
		}
	}

	return cfg, nil
}

// durationOrDefault falls back when the value is missing, unparsable or not positive.
func durationOrDefault(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if d := v.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}

// CompletionEnabled reports whether an API key for the completion API is set.
func (c *Config) CompletionEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// ProbeEnabled reports whether the feed probe job should be scheduled.
func (c *Config) ProbeEnabled() bool {
	return c.FeedProbeCron != "" && c.FeedProbeCron != ProbeOff
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	return c.level
}
