package routes

import (
	"boq_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addBoqRoutes(rg *gin.RouterGroup, gate *handlers.AccessGate, boq *handlers.BoqHandler, profile *handlers.ProfileHandler) {
	group := rg.Group("/boq")
	group.Use(gate.RequireAccess())
	group.GET("/catalog", boq.GetCatalog)
	group.GET("/items", boq.ListItems)
	group.POST("/items", boq.AddItem)
	group.PUT("/items/:index", boq.EditItem)
	group.DELETE("/items/:index", boq.RemoveItem)
	group.DELETE("/items", boq.ClearItems)
	group.GET("/export", boq.ExportItems)

	profileGroup := rg.Group("/profile")
	profileGroup.GET("/theme", profile.GetTheme)
	profileGroup.PUT("/theme", profile.SetTheme)
}
