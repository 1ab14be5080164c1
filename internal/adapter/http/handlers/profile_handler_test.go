package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProfileRouter() *gin.Engine {
	h := NewProfileHandler(false)
	r := gin.New()
	r.GET("/v1/profile/theme", h.GetTheme)
	r.PUT("/v1/profile/theme", h.SetTheme)
	return r
}

func TestProfileHandler_GetTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to light", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/profile/theme", nil)
		w := httptest.NewRecorder()
		newProfileRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"theme":"light"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("honors the stored preference", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/profile/theme", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
		w := httptest.NewRecorder()
		newProfileRouter().ServeHTTP(w, req)

		if w.Body.String() != `{"theme":"dark"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("garbage value falls back to light", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/profile/theme", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "neon"})
		w := httptest.NewRecorder()
		newProfileRouter().ServeHTTP(w, req)

		if w.Body.String() != `{"theme":"light"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProfileHandler_SetTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stores dark", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/profile/theme", bytes.NewBufferString(`{"theme":"dark"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newProfileRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "theme" || cookies[0].Value != "dark" {
			t.Fatalf("expected a theme cookie, got %+v", cookies)
		}
	})

	t.Run("rejects anything but dark or light", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/profile/theme", bytes.NewBufferString(`{"theme":"neon"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newProfileRouter().ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
