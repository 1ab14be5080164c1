package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPVerifier_Verify(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		v := NewHTTPVerifier("http://unused", time.Second)
		_, err := v.Verify(context.Background(), "   ")
		if !errors.Is(err, ErrTokenRequired) {
			t.Fatalf("expected ErrTokenRequired, got %v", err)
		}
	})

	t.Run("valid token yields the normalized email", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload struct {
				IDToken string `json:"id_token"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.IDToken != "tok-1" {
				t.Errorf("unexpected payload: %+v err=%v", payload, err)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"email": " Alice@Hagerstone.com "})
		}))
		defer srv.Close()

		email, err := NewHTTPVerifier(srv.URL, 5*time.Second).Verify(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if email != "alice@hagerstone.com" {
			t.Fatalf("expected normalized email, got %q", email)
		}
	})

	t.Run("401 and 403 are rejections", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			}))

			_, err := NewHTTPVerifier(srv.URL, 5*time.Second).Verify(context.Background(), "bad")
			srv.Close()
			if !errors.Is(err, ErrIdentityRejected) {
				t.Fatalf("status %d: expected ErrIdentityRejected, got %v", status, err)
			}
		}
	})

	t.Run("provider errors are unavailability", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}))
		defer srv.Close()

		_, err := NewHTTPVerifier(srv.URL, 5*time.Second).Verify(context.Background(), "tok")
		if !errors.Is(err, ErrIdentityUnavailable) {
			t.Fatalf("expected ErrIdentityUnavailable, got %v", err)
		}
	})

	t.Run("unreachable provider is unavailability", func(t *testing.T) {
		_, err := NewHTTPVerifier("http://127.0.0.1:1", 500*time.Millisecond).Verify(context.Background(), "tok")
		if !errors.Is(err, ErrIdentityUnavailable) {
			t.Fatalf("expected ErrIdentityUnavailable, got %v", err)
		}
	})
}
