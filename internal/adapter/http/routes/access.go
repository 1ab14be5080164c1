package routes

import (
	"boq_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAccessRoutes(rg *gin.RouterGroup, gate *handlers.AccessGate, handler *handlers.AccessRequestHandler) {
	// Waiting-view endpoints: reachable before approval, by design.
	access := rg.Group("/access")
	access.GET("/status", handler.RequestStatus)
	access.GET("/watch", handler.WatchRequest)

	admin := rg.Group("/admin")
	admin.Use(gate.RequireAdmin())
	admin.GET("/requests", handler.ListRequests)
	admin.GET("/requests/watch", handler.WatchAll)
	admin.PATCH("/requests/status", handler.SetStatus)
}
