package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSheetSource_Fetch(t *testing.T) {
	t.Run("maps sheet columns to catalog rows", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"Category":"Civil","Description":"Cement bag 50kg","Unit":"bag","Rate":350},
				{"Category":"Electrical","Description":"Copper wire 2.5mm","Unit":"m","Rate":42.5}
			]`))
		}))
		defer srv.Close()

		rows, err := NewSheetSource(srv.URL, 5*time.Second).Fetch(context.Background())
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].Category != "Civil" || rows[0].Rate != 350 {
			t.Fatalf("unexpected first row: %+v", rows[0])
		}
		if rows[1].Unit != "m" || rows[1].Rate != 42.5 {
			t.Fatalf("unexpected second row: %+v", rows[1])
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		if _, err := NewSheetSource(srv.URL, 5*time.Second).Fetch(context.Background()); err == nil {
			t.Fatalf("expected an error for status 403")
		}
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		}))
		defer srv.Close()

		if _, err := NewSheetSource(srv.URL, 5*time.Second).Fetch(context.Background()); err == nil {
			t.Fatalf("expected a decode error")
		}
	})
}
