package repository

import (
	"context"
	"sync"

	"github.com/nextgenxp/nextgenxp-backend/internal/projects/domain"
)

// MemoryStore keeps the document in process memory. A nil document behaves like a
// missing file: Load serves the default document until the first Save.
type MemoryStore struct {
	mu    sync.RWMutex
	doc   *domain.Document
	saves int
}

func NewMemoryStore(doc *domain.Document) *MemoryStore {
	s := &MemoryStore{}
	if doc != nil {
		s.doc = doc.Clone()
	}
	return s
}

func (s *MemoryStore) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	recordStoreOp(opLoad, nil)
	if s.doc == nil {
		return domain.DefaultDocument(), nil
	}
	return s.doc.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
	s.saves++
	recordStoreOp(opSave, nil)
	return nil
}

// Saves reports how many times the document was written.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
