package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

func TestListTransactions_DateWireNames(t *testing.T) {
	t.Parallel()
	s, rec := stubServer(t, http.StatusOK, `{"data": [{"id": "T1", "amount": 10}]}`)
	res, err := ListTransactions(context.Background(), s, types.ListTransactionsParams{
		TransactionType: "deposit",
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-31",
	})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	got := rec.get()
	if got.path != "/transactions" {
		t.Fatalf("path = %s", got.path)
	}
	q := got.query
	if q.Get("type") != "deposit" || q.Get("startDate") != "2024-01-01" || q.Get("endDate") != "2024-01-31" {
		t.Fatalf("unexpected query %v", q)
	}
	for _, k := range []string{"status", "start_date", "end_date"} {
		if q.Has(k) {
			t.Fatalf("unexpected key %q in %v", k, q)
		}
	}
	var txs []types.Transaction
	if err := res.Decode(&txs); err != nil || len(txs) != 1 || txs[0].Amount != 10 {
		t.Fatalf("decode: %+v err=%v", txs, err)
	}
}

func TestListTransactions_NoFilters(t *testing.T) {
	t.Parallel()
	s, rec := stubServer(t, http.StatusOK, `{"data": []}`)
	if _, err := ListTransactions(context.Background(), s, types.ListTransactionsParams{}); err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if q := rec.get().query; len(q) != 2 {
		t.Fatalf("expected only page and limit, got %v", q)
	}
}
