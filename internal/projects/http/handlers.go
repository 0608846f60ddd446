package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextgenxp/nextgenxp-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, err)
		return
	}

	in, err := domain.ParseProject(body)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) replaceFlowchart(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.svc.ReplaceFlowchart(c.Request.Context(), c.Param("project_id"), body); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgFlowchartUpdated})
}

// writeError maps service errors to responses. Only a missing project is a client
// error; storage and body failures surface as server errors.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
