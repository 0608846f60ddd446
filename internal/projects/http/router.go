package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/:project_id", h.get)
	rg.PUT("/:project_id/flowchart", h.replaceFlowchart)
}
