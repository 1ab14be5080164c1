package handlers

import (
	"net/http"
	"net/url"

	"boq_service/internal/usecase"
	"boq_service/internal/usecase/interfaces"
	"boq_service/pkg"

	"github.com/gin-gonic/gin"
)

// Client navigation targets the gate redirects to. These are pages served
// by the frontend, not API endpoints.
const (
	RouteLogin         = "/login"
	RouteRequestAccess = "/request-access"
	RouteUnauthorized  = "/unauthorized"
	RouteBoq           = "/boq"
)

const contextKeyEmail = "userEmail"

var errAccessCheckFailed = pkg.NewDomainErrorSimple("ACCESS_CHECK_FAILED", "Could not verify access, please retry", http.StatusServiceUnavailable)

// AccessGate guards protected routes. It resolves the session identity and
// runs the access decision machine on every request; anything short of an
// explicit approved decision never reaches the protected handler.

type AccessGate struct {
	access     usecase.IAccessRequestUseCase
	sessions   interfaces.ISessionStore
	cookieName string
}

func NewAccessGate(access usecase.IAccessRequestUseCase, sessions interfaces.ISessionStore, cookieName string) *AccessGate {
	return &AccessGate{access: access, sessions: sessions, cookieName: cookieName}
}

// CurrentEmail resolves the signed-in identity for a request, or "" when
// there is none.
func (g *AccessGate) CurrentEmail(c *gin.Context) string {
	token, err := c.Cookie(g.cookieName)
	if err != nil {
		return ""
	}
	email, ok := g.sessions.Lookup(token)
	if !ok {
		return ""
	}
	return email
}

// RequireAccess admits approved identities and redirects everyone else to
// the view matching their state.
func (g *AccessGate) RequireAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := g.CurrentEmail(c)

		decision, err := g.access.Evaluate(c.Request.Context(), email)
		if err != nil {
			// Ledger unreachable: default posture is not authorized.
			c.AbortWithStatusJSON(errAccessCheckFailed.HTTPStatus, errAccessCheckFailed.ToHTTPError())
			return
		}

		switch decision {
		case usecase.DecisionApproved:
			c.Set(contextKeyEmail, email)
			c.Next()
		case usecase.DecisionUnauthenticated:
			redirect(c, RouteLogin)
		case usecase.DecisionRejected:
			redirect(c, RouteUnauthorized)
		default:
			redirect(c, RouteRequestAccess+"?email="+url.QueryEscape(email))
		}
	}
}

// RequireAdmin admits only the configured operator identity. The ledger is
// never consulted here.
func (g *AccessGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := g.CurrentEmail(c)
		if !g.access.IsAdmin(email) {
			redirect(c, RouteUnauthorized)
			return
		}
		c.Set(contextKeyEmail, email)
		c.Next()
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

// EmailFromContext returns the identity the gate admitted for this request.
func EmailFromContext(c *gin.Context) string {
	return c.GetString(contextKeyEmail)
}
