package http

import "github.com/nextgenxp/nextgenxp-backend/internal/projects/service"

const (
	msgNotFound         = "Projeto não encontrado"
	msgFlowchartUpdated = "Fluxograma atualizado com sucesso"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}
