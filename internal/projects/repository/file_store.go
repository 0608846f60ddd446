package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nextgenxp/nextgenxp-backend/internal/projects/domain"
)

// FileStore keeps the document as a single pretty-printed JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. Nothing is read or written until first use.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document. A missing file yields the built-in default document,
// which is not written back.
func (s *FileStore) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		recordStoreOp(opLoad, nil)
		return domain.DefaultDocument(), nil
	}
	if err != nil {
		err = fmt.Errorf("read %s: %w", s.path, err)
		recordStoreOp(opLoad, err)
		return nil, err
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		err = fmt.Errorf("%w: %s: %v", domain.ErrMalformedStorage, s.path, err)
		recordStoreOp(opLoad, err)
		return nil, err
	}
	if doc.Projects == nil {
		doc.Projects = []domain.Project{}
	}

	recordStoreOp(opLoad, nil)
	return &doc, nil
}

// Save overwrites the document by writing a temp file next to it and renaming it into place.
func (s *FileStore) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.save(doc)
	recordStoreOp(opSave, err)
	return err
}

func (s *FileStore) save(doc *domain.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close document: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename document: %w", err)
	}
	return nil
}

// encodeDocument renders UTF-8 JSON with two-space indentation and no HTML escaping.
func encodeDocument(doc *domain.Document) ([]byte, error) {
	if doc.Projects == nil {
		doc = &domain.Document{Projects: []domain.Project{}}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
