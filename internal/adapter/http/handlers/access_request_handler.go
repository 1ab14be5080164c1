package handlers

import (
	"errors"
	"io"
	"net/http"

	request "boq_service/internal/adapter/http/dto/request"
	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/usecase"
	"boq_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
	errLedgerUnavailable    = pkg.NewDomainErrorSimple("LEDGER_UNAVAILABLE", "Failed to read access requests", http.StatusInternalServerError)
	errStatusUpdateFailed   = pkg.NewDomainErrorSimple("STATUS_UPDATE_FAILED", "Failed to update status. Please try again.", http.StatusInternalServerError)
)

// AccessRequestHandler serves the admin console (list + transition + live
// collection feed) and the request-access waiting view (record status +
// live record feed).

type AccessRequestHandler struct {
	usecase usecase.IAccessRequestUseCase
}

func NewAccessRequestHandler(uc usecase.IAccessRequestUseCase) *AccessRequestHandler {
	return &AccessRequestHandler{usecase: uc}
}

// ListRequests godoc
// @Summary      List every access request
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.AccessRequestResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/requests [get]
func (h *AccessRequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.usecase.List(c.Request.Context())
	if err != nil {
		c.JSON(errLedgerUnavailable.HTTPStatus, errLedgerUnavailable.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccessRequests(requests))
}

// SetStatus godoc
// @Summary      Transition one access request's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  request.SetStatusRequest  true  "email and new status"
// @Success      200  {object}  response.AccessRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /admin/requests/status [patch]
func (h *AccessRequestHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetStatus(c.Request.Context(), payload.ResolveEmail(), status)
	if err != nil {
		appErr := mapAccessRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccessRequest(updated))
}

// WatchAll streams the full collection over SSE: one snapshot immediately,
// then a fresh snapshot after every change. The subscription is released
// when the client disconnects.
func (h *AccessRequestHandler) WatchAll(c *gin.Context) {
	ch, cancel := h.usecase.WatchAll()
	defer cancel()

	first := true
	c.Stream(func(w io.Writer) bool {
		if first {
			first = false
			return h.pushSnapshot(c)
		}
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ch:
			return h.pushSnapshot(c)
		}
	})
}

// WatchRequest streams one identity's record over SSE, creating it as
// pending on first contact. The waiting view keeps this open so an
// operator decision lands without a reload.
func (h *AccessRequestHandler) WatchRequest(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(errInvalidStatusPayload.HTTPStatus, pkg.NewDomainErrorSimple("INVALID_REQUEST", "email is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	// Subscribe before the initial read so a transition between the two is
	// not lost.
	ch, cancel := h.usecase.Watch(email)
	defer cancel()

	initial, err := h.usecase.EnsureRequest(c.Request.Context(), email)
	if err != nil {
		appErr := mapAccessRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	first := true
	c.Stream(func(w io.Writer) bool {
		if first {
			first = false
			c.SSEvent("request", response.FromAccessRequest(initial))
			return true
		}
		select {
		case <-c.Request.Context().Done():
			return false
		case r := <-ch:
			c.SSEvent("request", response.FromAccessRequest(r))
			return true
		}
	})
}

// RequestStatus returns (creating if needed) the record for one identity:
// the check-or-create performed when the waiting view loads.
func (h *AccessRequestHandler) RequestStatus(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "email is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	r, err := h.usecase.EnsureRequest(c.Request.Context(), email)
	if err != nil {
		appErr := mapAccessRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccessRequest(r))
}

func (h *AccessRequestHandler) pushSnapshot(c *gin.Context) bool {
	requests, err := h.usecase.List(c.Request.Context())
	if err != nil {
		return false
	}
	c.SSEvent("requests", response.FromAccessRequests(requests))
	return true
}

func mapAccessRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidStatusPayload
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Access request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUpdateInFlight):
		return pkg.NewDomainErrorSimple("UPDATE_IN_FLIGHT", "An update for this email is still settling", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", errStatusUpdateFailed.Message, err, http.StatusInternalServerError)
	}
}
