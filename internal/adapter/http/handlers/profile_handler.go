package handlers

import (
	"net/http"

	request "boq_service/internal/adapter/http/dto/request"
	"boq_service/pkg"

	"github.com/gin-gonic/gin"
)

const themeCookie = "theme"

var errInvalidTheme = pkg.NewDomainErrorSimple("INVALID_THEME", "Theme must be dark or light", http.StatusBadRequest)

// ProfileHandler keeps the per-browser theme preference in a cookie, the
// service-side analogue of the original theme toggle's stored value.

type ProfileHandler struct {
	cookieSecure bool
}

func NewProfileHandler(cookieSecure bool) *ProfileHandler {
	return &ProfileHandler{cookieSecure: cookieSecure}
}

func (h *ProfileHandler) GetTheme(c *gin.Context) {
	theme, err := c.Cookie(themeCookie)
	if err != nil || (theme != "dark" && theme != "light") {
		theme = "light"
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *ProfileHandler) SetTheme(c *gin.Context) {
	var payload request.ThemeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTheme.HTTPStatus, errInvalidTheme.ToHTTPError())
		return
	}
	theme, err := payload.ResolveTheme()
	if err != nil {
		c.JSON(errInvalidTheme.HTTPStatus, errInvalidTheme.ToHTTPError())
		return
	}

	c.SetCookie(themeCookie, theme, 0, "/", "", h.cookieSecure, false)
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
