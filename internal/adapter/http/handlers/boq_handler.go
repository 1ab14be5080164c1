package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "boq_service/internal/adapter/http/dto/request"
	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/domain/entities"
	"boq_service/internal/infrastructure/export"
	"boq_service/internal/usecase"
	"boq_service/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
	errIncompleteAdd      = pkg.NewDomainErrorSimple("INCOMPLETE_ADD", "Please fill out all fields correctly.", http.StatusBadRequest)
	errInvalidIndex       = pkg.NewDomainErrorSimple("INVALID_INDEX", "Invalid line item index", http.StatusBadRequest)
	errCatalogUnavailable = pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Failed to load BOQ data. Please refresh the page.", http.StatusBadGateway)
	errExportFailed       = pkg.NewDomainErrorSimple("EXPORT_FAILED", "Failed to generate the Excel file.", http.StatusInternalServerError)
)

// BoqHandler serves the BOQ screen: catalog selection, the line-item
// ledger, and the spreadsheet export. Every route is behind the access
// gate; the owner identity comes from the gate's context.

type BoqHandler struct {
	boq     usecase.IBoqUseCase
	catalog usecase.ICatalogUseCase
}

func NewBoqHandler(boq usecase.IBoqUseCase, catalog usecase.ICatalogUseCase) *BoqHandler {
	return &BoqHandler{boq: boq, catalog: catalog}
}

// GetCatalog godoc
// @Summary      Catalog categories and selectable rows
// @Tags         boq
// @Produce      json
// @Param        category  query  string  false  "category filter"
// @Param        search    query  string  false  "description search"
// @Success      200  {object}  response.CatalogResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /boq/catalog [get]
func (h *BoqHandler) GetCatalog(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(errCatalogUnavailable.HTTPStatus, errCatalogUnavailable.ToHTTPError())
		return
	}
	rows, err := h.catalog.Filter(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		c.JSON(errCatalogUnavailable.HTTPStatus, errCatalogUnavailable.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(categories, rows))
}

// ListItems godoc
// @Summary      The current ledger and its grand total
// @Tags         boq
// @Produce      json
// @Success      200  {object}  response.LedgerResponse
// @Router       /boq/items [get]
func (h *BoqHandler) ListItems(c *gin.Context) {
	items, total, err := h.boq.Items(c.Request.Context(), EmailFromContext(c))
	if err != nil {
		appErr := mapBoqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items, total))
}

// AddItem godoc
// @Summary      Append a line item from a selected catalog row
// @Tags         boq
// @Accept       json
// @Produce      json
// @Param        payload  body  request.AddItemRequest  true  "selection and quantity"
// @Success      201  {object}  response.LedgerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /boq/items [post]
func (h *BoqHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	items, err := h.boq.Add(c.Request.Context(), EmailFromContext(c), payload.ToCatalogRow(), payload.Quantity)
	if err != nil {
		appErr := mapBoqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLineItems(items, entities.LedgerTotal(items)))
}

// EditItem godoc
// @Summary      Replace the line item at an index with an edited draft
// @Tags         boq
// @Accept       json
// @Produce      json
// @Param        index    path  int  true  "line item index"
// @Param        payload  body  request.EditItemRequest  true  "edited fields"
// @Success      200  {object}  response.LedgerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /boq/items/{index} [put]
func (h *BoqHandler) EditItem(c *gin.Context) {
	index, ok := h.index(c)
	if !ok {
		return
	}

	var payload request.EditItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, field, err := payload.ResolveLineItem()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_FIELD", fmt.Sprintf("Please enter a valid number for %s", field), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.boq.Edit(c.Request.Context(), EmailFromContext(c), index, item)
	if err != nil {
		appErr := mapBoqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items, entities.LedgerTotal(items)))
}

// RemoveItem godoc
// @Summary      Delete the line item at an index
// @Tags         boq
// @Produce      json
// @Param        index  path  int  true  "line item index"
// @Success      200  {object}  response.LedgerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /boq/items/{index} [delete]
func (h *BoqHandler) RemoveItem(c *gin.Context) {
	index, ok := h.index(c)
	if !ok {
		return
	}

	items, err := h.boq.Remove(c.Request.Context(), EmailFromContext(c), index)
	if err != nil {
		appErr := mapBoqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items, entities.LedgerTotal(items)))
}

// ClearItems godoc
// @Summary      Empty the whole ledger
// @Tags         boq
// @Success      204
// @Router       /boq/items [delete]
func (h *BoqHandler) ClearItems(c *gin.Context) {
	if err := h.boq.Clear(c.Request.Context(), EmailFromContext(c)); err != nil {
		appErr := mapBoqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportItems godoc
// @Summary      Download the ledger as an Excel workbook
// @Tags         boq
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /boq/export [get]
func (h *BoqHandler) ExportItems(c *gin.Context) {
	data, err := h.boq.Export(c.Request.Context(), EmailFromContext(c))
	if err != nil {
		c.JSON(errExportFailed.HTTPStatus, errExportFailed.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *BoqHandler) index(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapBoqError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSelection), errors.Is(err, usecase.ErrInvalidQuantity):
		return errIncompleteAdd
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
