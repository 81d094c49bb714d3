package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

func TestListCryptoOrders_Query(t *testing.T) {
	t.Parallel()
	s, rec := stubServer(t, http.StatusOK, `{"data": []}`)
	if _, err := ListCryptoOrders(context.Background(), s, types.ListCryptoOrdersParams{OrderType: "buy", Crypto: "BTC", Limit: 5}); err != nil {
		t.Fatalf("ListCryptoOrders: %v", err)
	}
	got := rec.get()
	if got.method != http.MethodGet || got.path != "/crypto/orders" {
		t.Fatalf("unexpected request %s %s", got.method, got.path)
	}
	q := got.query
	if q.Get("orderType") != "buy" || q.Get("crypto") != "BTC" || q.Get("limit") != "5" || q.Has("status") || q.Has("order_type") {
		t.Fatalf("unexpected query %v", q)
	}
}

func TestCreateCryptoOrder_Body(t *testing.T) {
	t.Parallel()
	s, rec := stubServer(t, http.StatusCreated, `{"data": {"order": {"id": "O1", "orderType": "sell"}}}`)
	_, err := CreateCryptoOrder(context.Background(), s, types.CreateCryptoOrderRequest{Crypto: "ETH", OrderType: "sell", Amount: 1.5})
	if err != nil {
		t.Fatalf("CreateCryptoOrder: %v", err)
	}
	want := `{"crypto":"ETH","orderType":"sell","amount":1.5}`
	if got := rec.get().rawBody; got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestCreateCryptoOrder_LimitPrice(t *testing.T) {
	t.Parallel()
	s, rec := stubServer(t, http.StatusCreated, `{"data": {}}`)
	_, err := CreateCryptoOrder(context.Background(), s, types.CreateCryptoOrderRequest{Crypto: "BTC", OrderType: "buy", Amount: 0.01, Price: types.Ptr(65000.0)})
	if err != nil {
		t.Fatalf("CreateCryptoOrder: %v", err)
	}
	if body := rec.get().body(t); body["price"] != float64(65000) {
		t.Fatalf("price not sent: %v", body)
	}
}

func TestCryptoOrders_APIError(t *testing.T) {
	t.Parallel()
	s, _ := stubServer(t, http.StatusBadRequest, `{"error": "insufficient balance"}`)
	if _, err := CreateCryptoOrder(context.Background(), s, types.CreateCryptoOrderRequest{Crypto: "BTC", OrderType: "buy", Amount: 100}); err == nil {
		t.Fatal("expected error")
	}
}
