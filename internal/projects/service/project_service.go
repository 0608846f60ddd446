package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nextgenxp/nextgenxp-backend/internal/logging"
	"github.com/nextgenxp/nextgenxp-backend/internal/projects/domain"
	"github.com/nextgenxp/nextgenxp-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic.
// Every call loads the document fresh from the store; mutations hold mu across
// load, modify and save so concurrent writers cannot lose each other's updates.
type ProjectService struct {
	store repository.Store
	mu    sync.RWMutex
}

// NewProjectService creates a new project service
func NewProjectService(store repository.Store) *ProjectService {
	return &ProjectService{store: store}
}

// List returns every project in document order.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		logging.NewLogger(ctx).LogError("list_projects", err)
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return doc.Projects, nil
}

// Get returns the first project whose id matches.
func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		logging.NewLogger(ctx).LogError("get_project", err, zap.String("project_id", id))
		return nil, fmt.Errorf("load projects: %w", err)
	}

	i := doc.Find(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return doc.Projects[i], nil
}

// Create assigns a fresh id to in, attaches the default flowchart when none was
// supplied, appends it and persists the document. Any client supplied id is discarded.
func (s *ProjectService) Create(ctx context.Context, in domain.Project) (domain.Project, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: project must be a JSON object", domain.ErrInvalidBody)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.NewLogger(ctx)

	doc, err := s.store.Load(ctx)
	if err != nil {
		log.LogError("create_project", err)
		return nil, fmt.Errorf("load projects: %w", err)
	}

	p := in.Clone()
	p.SetID(domain.NextProjectID(doc.Projects))
	if !p.HasFlowchart() {
		p.SetFlowchart(domain.DefaultFlowchart())
	}

	doc.Projects = append(doc.Projects, p)
	if err := s.store.Save(ctx, doc); err != nil {
		log.LogError("create_project", err, zap.String("project_id", p.ID()))
		return nil, fmt.Errorf("save projects: %w", err)
	}

	log.LogInfo("create_project", "project created", zap.String("project_id", p.ID()))
	return p, nil
}

// ReplaceFlowchart swaps the project's flowchart for flowchart without merging or
// inspecting it. flowchart must be valid JSON.
func (s *ProjectService) ReplaceFlowchart(ctx context.Context, id string, flowchart json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.NewLogger(ctx)

	doc, err := s.store.Load(ctx)
	if err != nil {
		log.LogError("replace_flowchart", err, zap.String("project_id", id))
		return fmt.Errorf("load projects: %w", err)
	}

	i := doc.Find(id)
	if i < 0 {
		return domain.ErrNotFound
	}

	if !json.Valid(flowchart) {
		return fmt.Errorf("%w: flowchart is not valid JSON", domain.ErrInvalidBody)
	}

	doc.Projects[i].SetFlowchart(flowchart)
	if err := s.store.Save(ctx, doc); err != nil {
		log.LogError("replace_flowchart", err, zap.String("project_id", id))
		return fmt.Errorf("save projects: %w", err)
	}

	log.LogInfo("replace_flowchart", "flowchart replaced", zap.String("project_id", id))
	return nil
}
