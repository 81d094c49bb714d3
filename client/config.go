package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the settings a client can take from the environment. Values
// are read from variables with the prefix "COINBOX_".
// Example: COINBOX_API_KEY=cb_live_... COINBOX_TIMEOUT=10s .
type Config struct {
	APIKey    string        `envconfig:"API_KEY"`
	BaseURL   string        `envconfig:"BASE_URL"   default:"https://coinbox.example.com/api/v1"`
	Timeout   time.Duration `envconfig:"TIMEOUT"    default:"30s"`
	Debug     bool          `envconfig:"DEBUG"      default:"false"`
	UserAgent string        `envconfig:"USER_AGENT"`
}

// LoadConfig populates Config from environment variables (prefix COINBOX_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("COINBOX", &c)
}

// Options converts cfg into construction options. APIKey is not included.
func (cfg Config) Options() []Option {
	opts := []Option{WithDebugLogging(cfg.Debug)}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}
	return opts
}

// NewFromEnv builds a client from COINBOX_* variables. opts are applied after
// the environment, so they take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return New(cfg.APIKey, append(cfg.Options(), opts...)...)
}
