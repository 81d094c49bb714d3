package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("COINBOX_API_KEY", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("COINBOX_TIMEOUT", "soon")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestNewFromEnv(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data": {"id": "L1"}}`))
	}))
	defer srv.Close()

	t.Setenv("COINBOX_API_KEY", "cb_test_env")
	t.Setenv("COINBOX_BASE_URL", srv.URL+"/")
	t.Setenv("COINBOX_TIMEOUT", "3s")

	c, err := NewFromEnv()
	require.NoError(t, err)
	defer func() { _ = c.Close() }()
	assert.Equal(t, srv.URL, c.BaseURL())
	assert.Equal(t, 3*time.Second, c.http.Timeout)

	_, err = c.GetLoan(context.Background(), "L1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer cb_test_env", auth)
}

func TestNewFromEnv_MissingKey(t *testing.T) {
	t.Setenv("COINBOX_API_KEY", "")
	_, err := NewFromEnv()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewFromEnv_OptionsOverrideEnv(t *testing.T) {
	t.Setenv("COINBOX_API_KEY", "k")
	t.Setenv("COINBOX_BASE_URL", "https://env.example.com")
	c, err := NewFromEnv(WithBaseURL("https://opt.example.com"))
	require.NoError(t, err)
	assert.Equal(t, "https://opt.example.com", c.BaseURL())
}
