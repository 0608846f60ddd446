package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthStatusOK  = "OK"
	healthMessageOK = "API NextGenXP funcionando"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Service   string    `json:"service,omitempty"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler answers liveness checks without touching storage.
type HealthHandler struct {
	serviceName string
	version     string
}

func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    healthStatusOK,
		Message:   healthMessageOK,
		Service:   h.serviceName,
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	})
}

// RegisterRoutes mounts the API health endpoint on api and the probe alias on root.
func (h *HealthHandler) RegisterRoutes(root gin.IRouter, api gin.IRouter) {
	api.GET("/health", h.HealthCheck)
	root.GET("/healthz", h.HealthCheck)
}
