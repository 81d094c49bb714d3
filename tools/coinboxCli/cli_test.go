package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type stubBackend struct {
	mu    sync.Mutex
	last  *http.Request
	body  string
	calls int
}

func (s *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/loans", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "L1", "status": "pending"}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"id": "L1"}}})
	})
	mux.HandleFunc("/loans/L1", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "L1"}})
	})
	mux.HandleFunc("/loans/missing", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found"}`))
	})
	mux.HandleFunc("/investments", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "I1"}})
	})
	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	mux.HandleFunc("/crypto/orders", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "O1"}})
	})
	return mux
}

func (s *stubBackend) record(r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = r
	s.body = string(b)
	s.calls++
}

func (s *stubBackend) snapshot() (*http.Request, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.body
}

func execute(t *testing.T, srvURL string, args ...string) (string, error) {
	t.Helper()
	b := &strings.Builder{}
	root := NewRootCmd()
	root.SetOut(b)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--api-key", "cb_test_key", "--base-url", srvURL}, args...))
	err := root.Execute()
	return b.String(), err
}

func TestCLI_LoanCommands(t *testing.T) {
	stub := &stubBackend{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	out, err := execute(t, srv.URL, "create-loan", "--amount", "1000", "--interest-rate", "5.5", "--term", "12", "--type", "personal")
	if err != nil {
		t.Fatalf("create-loan cmd failed: %v", err)
	}
	r, body := stub.snapshot()
	if r.Header.Get("Authorization") != "Bearer cb_test_key" {
		t.Fatalf("auth header: %q", r.Header.Get("Authorization"))
	}
	if body != `{"amount":1000,"interestRate":5.5,"term":12,"type":"personal"}` {
		t.Fatalf("unexpected body: %s", body)
	}
	if !strings.Contains(out, `"id": "L1"`) {
		t.Fatalf("unexpected output: %s", out)
	}

	if _, err := execute(t, srv.URL, "list-loans", "--status", "active"); err != nil {
		t.Fatalf("list-loans cmd failed: %v", err)
	}
	r, _ = stub.snapshot()
	if q := r.URL.Query(); q.Get("page") != "1" || q.Get("limit") != "50" || q.Get("status") != "active" {
		t.Fatalf("unexpected query: %s", r.URL.RawQuery)
	}

	if _, err := execute(t, srv.URL, "get-loan", "--loan-id", "L1"); err != nil {
		t.Fatalf("get-loan cmd failed: %v", err)
	}

	_, err = execute(t, srv.URL, "get-loan", "--loan-id", "missing")
	if err == nil || err.Error() != "not found (HTTP 404)" {
		t.Fatalf("expected API error, got %v", err)
	}
}

func TestCLI_CreateLoanRejectsBadCollateral(t *testing.T) {
	stub := &stubBackend{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	_, err := execute(t, srv.URL, "create-loan", "--amount", "1", "--interest-rate", "1", "--term", "1", "--type", "personal", "--collateral", "{not json")
	if err == nil {
		t.Fatalf("expected collateral parse error")
	}
	if stub.calls != 0 {
		t.Fatalf("request sent despite invalid collateral")
	}
}

func TestCLI_OptionalFlagsOnlySentWhenSet(t *testing.T) {
	stub := &stubBackend{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	if _, err := execute(t, srv.URL, "create-investment", "--amount", "500", "--type", "crypto", "--asset", "ETH", "--duration", "0"); err != nil {
		t.Fatalf("create-investment cmd failed: %v", err)
	}
	_, body := stub.snapshot()
	if body != `{"amount":500,"type":"crypto","asset":"ETH","duration":0}` {
		t.Fatalf("unexpected body: %s", body)
	}

	if _, err := execute(t, srv.URL, "create-crypto-order", "--crypto", "BTC", "--order-type", "buy", "--amount", "0.5"); err != nil {
		t.Fatalf("create-crypto-order cmd failed: %v", err)
	}
	_, body = stub.snapshot()
	if strings.Contains(body, "price") {
		t.Fatalf("price sent for market order: %s", body)
	}
}

func TestCLI_ListFilters(t *testing.T) {
	stub := &stubBackend{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	if _, err := execute(t, srv.URL, "list-transactions", "--type", "deposit", "--start-date", "2024-01-01"); err != nil {
		t.Fatalf("list-transactions cmd failed: %v", err)
	}
	r, _ := stub.snapshot()
	if q := r.URL.Query(); q.Get("type") != "deposit" || q.Get("startDate") != "2024-01-01" || q.Has("endDate") {
		t.Fatalf("unexpected query: %s", r.URL.RawQuery)
	}

	if _, err := execute(t, srv.URL, "list-crypto-orders", "--crypto", "BTC", "--order-type", "sell", "--limit", "5"); err != nil {
		t.Fatalf("list-crypto-orders cmd failed: %v", err)
	}
	r, _ = stub.snapshot()
	if q := r.URL.Query(); q.Get("crypto") != "BTC" || q.Get("orderType") != "sell" || q.Get("limit") != "5" {
		t.Fatalf("unexpected query: %s", r.URL.RawQuery)
	}

	if _, err := execute(t, srv.URL, "list-investments", "--type", "bonds"); err != nil {
		t.Fatalf("list-investments cmd failed: %v", err)
	}
}

func TestCLI_MissingAPIKey(t *testing.T) {
	t.Setenv("COINBOX_API_KEY", "")
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"list-loans"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "api key") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}
