package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// captured is the last request seen by a stub server.
type captured struct {
	mu      sync.Mutex
	method  string
	path    string
	query   url.Values
	header  http.Header
	rawBody string
}

func (c *captured) get() *captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &captured{method: c.method, path: c.path, query: c.query, header: c.header, rawBody: c.rawBody}
}

// body decodes the captured JSON body into a generic map.
func (c *captured) body(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(c.rawBody), &m); err != nil {
		t.Fatalf("decode captured body %q: %v", c.rawBody, err)
	}
	return m
}

// stubServer records each request and answers with status and body.
func stubServer(t *testing.T, status int, body string) (*Session, *captured) {
	t.Helper()
	rec := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.header = r.Header.Clone()
		rec.rawBody = string(b)
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return newSession(srv.URL, srv.Client()), rec
}

func newSession(baseURL string, hc *http.Client) *Session {
	return NewSession(SessionConfig{
		BaseURL:    baseURL,
		APIKey:     "cb_test_key",
		HTTPClient: hc,
		Logger:     zerolog.Nop(),
	})
}
