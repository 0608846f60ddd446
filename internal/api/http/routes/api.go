package routes

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/nextgenxp/nextgenxp-backend/internal/api/http"
	projecthttp "github.com/nextgenxp/nextgenxp-backend/internal/projects/http"
	"github.com/nextgenxp/nextgenxp-backend/internal/projects/repository"
	"github.com/nextgenxp/nextgenxp-backend/internal/projects/service"
)

type APIDeps struct {
	ServiceName string
	Version     string
	Store       repository.Store
}

// RegisterAPI mounts the health check and the project endpoints under /api.
func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api")

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r, api)

	projectService := service.NewProjectService(dep.Store)
	projecthttp.New(projectService).Register(api.Group("/projects"))
}
