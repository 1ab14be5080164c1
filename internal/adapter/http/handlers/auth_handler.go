package handlers

import (
	"errors"
	"net/http"
	"net/url"

	request "boq_service/internal/adapter/http/dto/request"
	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/infrastructure/identity"
	"boq_service/internal/usecase"
	"boq_service/internal/usecase/interfaces"
	"boq_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errAuthRejected        = pkg.NewDomainErrorSimple("AUTH_REJECTED", "Sign-in was rejected", http.StatusUnauthorized)
	errAuthUnavailable     = pkg.NewDomainErrorSimple("AUTH_UNAVAILABLE", "Sign-in is temporarily unavailable", http.StatusServiceUnavailable)
)

// AuthHandler signs identities in and out. The actual authentication lives
// with the external identity provider; this handler only exchanges its
// token for an email and owns the session cookie.

type AuthHandler struct {
	verifier     interfaces.IIdentityVerifier
	sessions     interfaces.ISessionStore
	access       usecase.IAccessRequestUseCase
	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(verifier interfaces.IIdentityVerifier, sessions interfaces.ISessionStore, access usecase.IAccessRequestUseCase, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		verifier:     verifier,
		sessions:     sessions,
		access:       access,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Login godoc
// @Summary      Sign in with an identity-provider token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  request.LoginRequest  true  "sign-in token"
// @Success      200  {object}  response.LoginResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	email, err := h.verifier.Verify(c.Request.Context(), payload.ResolveToken())
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token := h.sessions.Create(email)
	c.SetCookie(h.cookieName, token, 0, "/", "", h.cookieSecure, true)

	redirect := RouteBoq
	if !h.access.IsTrusted(email) {
		redirect = RouteRequestAccess + "?email=" + url.QueryEscape(email)
	}
	c.JSON(http.StatusOK, response.LoginResponse{Email: email, Redirect: redirect})
}

// Logout godoc
// @Summary      Sign the current session out
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil {
		h.sessions.Delete(token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, identity.ErrTokenRequired):
		return errInvalidLoginPayload
	case errors.Is(err, identity.ErrIdentityRejected):
		return errAuthRejected
	default:
		return errAuthUnavailable
	}
}
