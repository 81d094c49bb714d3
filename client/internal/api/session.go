package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	sdkerrors "github.com/AlliediMpact/coinbox-go/client/internal/errors"
	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

// RequestIDHeader carries a per-request UUID so calls can be traced server side.
const RequestIDHeader = "X-Request-ID"

// Outcome labels a finished call.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeAPIError     Outcome = "api_error"
	OutcomeNetworkError Outcome = "network_error"
)

// Completion is reported to SessionConfig.Observe once per dispatched call.
type Completion struct {
	Method     string
	Route      string
	StatusCode int
	Outcome    Outcome
	Elapsed    time.Duration
	RequestID  string
	Enveloped  bool
}

// SessionConfig configures NewSession.
type SessionConfig struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient *http.Client
	Logger     zerolog.Logger
	Observe    func(Completion)
}

// Session is the reusable connection state shared by all calls of a client.
// It is safe for concurrent use.
type Session struct {
	rest    *resty.Client
	observe func(Completion)
}

// NewSession builds a resty client that sends the bearer credential and JSON
// headers on every request.
func NewSession(cfg SessionConfig) *Session {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{l: cfg.Logger})
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}
	observe := cfg.Observe
	if observe == nil {
		observe = func(Completion) {}
	}
	return &Session{rest: rc, observe: observe}
}

// Dispatch issues call and translates the response.
//
// A 2xx response yields the "data" member of the body, or the whole body when
// there is none. A non-2xx response yields an API error built from the body's
// "error" field. A transport failure or a body that is not JSON yields a
// network error without a status code.
func (s *Session) Dispatch(ctx context.Context, call Call) (*types.Result, error) {
	requestID := uuid.NewString()
	req := s.rest.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if len(call.PathParams) > 0 {
		req.SetPathParams(call.PathParams)
	}
	if len(call.Query) > 0 {
		req.SetQueryParams(call.Query)
	}
	if call.Body != nil {
		body, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		req.SetBody(body)
	}

	done := Completion{Method: call.Method, Route: call.Route, RequestID: requestID}
	op := call.Method + " " + call.Route
	start := time.Now()

	resp, err := req.Execute(call.Method, call.Route)
	done.Elapsed = time.Since(start)
	if err != nil {
		done.Outcome = OutcomeNetworkError
		s.observe(done)
		return nil, sdkerrors.NewNetworkError(op, err, requestID)
	}
	done.StatusCode = resp.StatusCode()

	raw := resp.Body()
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		done.Outcome = OutcomeNetworkError
		s.observe(done)
		return nil, sdkerrors.NewNetworkError(op, fmt.Errorf("decode response (HTTP %d): %w", resp.StatusCode(), err), requestID)
	}

	if !resp.IsSuccess() {
		done.Outcome = OutcomeAPIError
		s.observe(done)
		return nil, sdkerrors.NewAPIError(resp.StatusCode(), parsed, requestID)
	}

	payload, enveloped := types.Unwrap(raw)
	done.Outcome = OutcomeSuccess
	done.Enveloped = enveloped
	s.observe(done)
	return types.NewResult(payload, enveloped), nil
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
