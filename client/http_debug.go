package client

import (
	"bytes"
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps each request and response at debug level.
//
// When to use:
//   - Set COINBOX_DEBUG=true or DEBUG=true, or pass WithDebugLogging(true)
//   - While building an integration or chasing an unexpected API response
//
// The Authorization header is redacted from dumps. Bodies are not, and they
// carry amounts and account data, so keep this out of production.
//
// Example usage:
//
//	export COINBOX_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redactAuthorization(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// CloseIdleConnections forwards to the wrapped transport so Client.Close
// still releases pooled connections when debugging is on.
func (dt *debugTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	if ci, ok := base.(closeIdler); ok {
		ci.CloseIdleConnections()
	}
}

// redactAuthorization blanks the credential in a wire dump.
func redactAuthorization(dump []byte) string {
	lines := bytes.Split(dump, []byte("\r\n"))
	for i, line := range lines {
		if bytes.HasPrefix(bytes.ToLower(line), []byte("authorization:")) {
			lines[i] = []byte("Authorization: [redacted]")
		}
	}
	return string(bytes.Join(lines, []byte("\r\n")))
}

// debugLoggingRequested reports whether COINBOX_DEBUG=true or DEBUG=true.
func debugLoggingRequested() bool {
	return os.Getenv("COINBOX_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
