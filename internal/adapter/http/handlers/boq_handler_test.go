package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"boq_service/internal/adapter/http/handlers/mocks"
	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBoqRouter(t *testing.T) (*gin.Engine, *mocks.MockIBoqUseCase, *mocks.MockICatalogUseCase) {
	ctrl := gomock.NewController(t)
	boq := mocks.NewMockIBoqUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewBoqHandler(boq, catalog)

	r := gin.New()
	// The gate normally injects the identity; tests pin it directly.
	r.Use(func(c *gin.Context) { c.Set(contextKeyEmail, "alice@hagerstone.com") })
	r.GET("/v1/boq/catalog", h.GetCatalog)
	r.GET("/v1/boq/items", h.ListItems)
	r.POST("/v1/boq/items", h.AddItem)
	r.PUT("/v1/boq/items/:index", h.EditItem)
	r.DELETE("/v1/boq/items/:index", h.RemoveItem)
	r.DELETE("/v1/boq/items", h.ClearItems)
	r.GET("/v1/boq/export", h.ExportItems)
	return r, boq, catalog
}

func TestBoqHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("categories and filtered rows", func(t *testing.T) {
		r, _, catalog := newBoqRouter(t)
		catalog.EXPECT().Categories(gomock.Any()).Return([]string{"Civil"}, nil)
		catalog.EXPECT().Filter(gomock.Any(), "Civil", "cement").Return([]entities.CatalogRow{
			{Category: "Civil", Description: "Cement bag 50kg", Unit: "bag", Rate: 350},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/boq/catalog?category=Civil&search=cement", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sheet failure maps to 502 with reload message", func(t *testing.T) {
		r, _, catalog := newBoqRouter(t)
		catalog.EXPECT().Categories(gomock.Any()).Return(nil, errors.New("sheet unreachable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/boq/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Failed to load BOQ data. Please refresh the page.")) {
			t.Fatalf("expected reload message, got %s", w.Body.String())
		}
	})
}

func TestBoqHandler_ListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, boq, _ := newBoqRouter(t)
	items := []entities.LineItem{entities.NewLineItem(entities.CatalogRow{Category: "Civil", Description: "Sand", Unit: "m3", Rate: 1200}, 2)}
	boq.EXPECT().Items(gomock.Any(), "alice@hagerstone.com").Return(items, 2400.0, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/boq/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Items []map[string]any `json:"items"`
		Total float64          `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Items) != 1 || body.Total != 2400 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBoqHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete selection surfaces the form warning", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		boq.EXPECT().Add(gomock.Any(), "alice@hagerstone.com", gomock.Any(), 2.0).Return(nil, usecase.ErrMissingSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/boq/items", bytes.NewBufferString(`{"category":"Civil","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Please fill out all fields correctly.")) {
			t.Fatalf("expected form warning, got %s", w.Body.String())
		}
	})

	t.Run("zero quantity surfaces the same warning", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		boq.EXPECT().Add(gomock.Any(), "alice@hagerstone.com", gomock.Any(), 0.0).Return(nil, usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPost, "/v1/boq/items", bytes.NewBufferString(`{"category":"Civil","description":"Cement bag 50kg","unit":"bag","rate":350}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Please fill out all fields correctly.")) {
			t.Fatalf("expected form warning, got %s", w.Body.String())
		}
	})

	t.Run("success returns the grown ledger", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		row := entities.CatalogRow{Category: "Civil", Description: "Cement bag 50kg", Unit: "bag", Rate: 350}
		boq.EXPECT().Add(gomock.Any(), "alice@hagerstone.com", row, 10.0).Return([]entities.LineItem{entities.NewLineItem(row, 10)}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/boq/items", bytes.NewBufferString(`{"category":"Civil","description":"Cement bag 50kg","unit":"bag","rate":350,"quantity":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Total float64 `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Total != 3500 {
			t.Fatalf("expected total 3500, got %v", body.Total)
		}
	})
}

func TestBoqHandler_EditItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric rate names the field", func(t *testing.T) {
		r, _, _ := newBoqRouter(t)
		// No usecase expectation: the draft must stay unsaved.

		req := httptest.NewRequest(http.MethodPut, "/v1/boq/items/0", bytes.NewBufferString(`{"category":"Civil","description":"Sand","unit":"m3","rate":"abc","quantity":"2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Please enter a valid number for Rate")) {
			t.Fatalf("expected field message, got %s", w.Body.String())
		}
	})

	t.Run("non-numeric quantity names the field", func(t *testing.T) {
		r, _, _ := newBoqRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/boq/items/0", bytes.NewBufferString(`{"category":"Civil","description":"Sand","unit":"m3","rate":"100","quantity":"lots"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Please enter a valid number for Quantity")) {
			t.Fatalf("expected field message, got %s", w.Body.String())
		}
	})

	t.Run("valid draft lands with a derived amount", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		boq.EXPECT().Edit(gomock.Any(), "alice@hagerstone.com", 1, gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ any, _ string, _ int, item entities.LineItem) ([]entities.LineItem, error) {
				if item.Rate != 100 || item.Quantity != 5 {
					t.Fatalf("unexpected parsed draft: %+v", item)
				}
				item.Recompute()
				return []entities.LineItem{item}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/boq/items/1", bytes.NewBufferString(`{"category":"Civil","description":"Sand","unit":"m3","rate":"100","quantity":"5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Total float64 `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Total != 500 {
			t.Fatalf("expected total 500, got %v", body.Total)
		}
	})

	t.Run("unknown index maps to 404", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		boq.EXPECT().Edit(gomock.Any(), "alice@hagerstone.com", 9, gomock.Any()).Return(nil, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/boq/items/9", bytes.NewBufferString(`{"category":"Civil","description":"Sand","unit":"m3","rate":"1","quantity":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-integer index is rejected early", func(t *testing.T) {
		r, _, _ := newBoqRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/boq/items/abc", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBoqHandler_RemoveItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, boq, _ := newBoqRouter(t)
	remaining := []entities.LineItem{entities.NewLineItem(entities.CatalogRow{Category: "Civil", Description: "Sand", Unit: "m3", Rate: 1200}, 1)}
	boq.EXPECT().Remove(gomock.Any(), "alice@hagerstone.com", 0).Return(remaining, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/boq/items/0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBoqHandler_ClearItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, boq, _ := newBoqRouter(t)
	boq.EXPECT().Clear(gomock.Any(), "alice@hagerstone.com").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/boq/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestBoqHandler_ExportItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("workbook download", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		boq.EXPECT().Export(gomock.Any(), "alice@hagerstone.com").Return([]byte("PK workbook bytes"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/boq/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="BOQ_Generated.xlsx"` {
			t.Fatalf("unexpected disposition: %s", cd)
		}
	})

	t.Run("export failure maps to 500", func(t *testing.T) {
		r, boq, _ := newBoqRouter(t)
		boq.EXPECT().Export(gomock.Any(), "alice@hagerstone.com").Return(nil, errors.New("encode"))

		req := httptest.NewRequest(http.MethodGet, "/v1/boq/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
