package repository

import (
	"context"

	"github.com/nextgenxp/nextgenxp-backend/internal/projects/domain"
)

// Store loads and saves the whole project document.
// Load must return a document the caller may mutate freely.
type Store interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// MemoryPath selects the in-memory store in New.
const MemoryPath = ":memory:"

// New returns the store for the configured data file.
func New(dataFile string) Store {
	if dataFile == MemoryPath {
		return NewMemoryStore(nil)
	}
	return NewFileStore(dataFile)
}
