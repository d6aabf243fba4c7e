package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ptrack/internal/modules/tracker/domain"
	trackerout "ptrack/internal/modules/tracker/port/out"
)

// FileDocumentStore keeps the whole document as one JSON blob. Writes
// replace the file via a temp-file rename so a crash never leaves a
// half-written document behind.
type FileDocumentStore struct {
	path string
}

func NewFileDocumentStore(path string) trackerout.DocumentStore {
	return &FileDocumentStore{path: path}
}

func (s *FileDocumentStore) Load(_ context.Context) (domain.Document, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		// Absent store means first run; anything else is treated the
		// same way so a broken file degrades to a fresh document.
		return domain.Document{}, nil
	}
	doc := domain.Document{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domain.Document{}, nil
	}
	return doc, nil
}

func (s *FileDocumentStore) Save(_ context.Context, doc domain.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
