package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options only record settings; New applies the timeout and the debug
// transport after every option has run, so their order does not matter.
type Option func(*Client) error

// WithBaseURL overrides DefaultBaseURL. Trailing slashes are stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		u := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if u == "" {
			return fmt.Errorf("base url cannot be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on the total time spent on a single HTTP request (including
// connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient makes the SDK reuse hc's transport, cookie jar and redirect
// policy. hc is copied; its Timeout is replaced by the SDK timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped at debug level when enabled is true. The Authorization header is
// redacted, but bodies are logged verbatim; do not enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithLogger replaces the global zerolog logger used for SDK debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithUserAgent overrides the default "coinbox-go/<version>" User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}
