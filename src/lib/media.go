package lib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore is the boundary to wherever image bytes actually live. The
// domain model only ever holds the reference string it returns.
type MediaStore interface {
	Store(data []byte, ext string) (string, error)
}

// DiskMediaStore writes uploads under a local directory and references
// them by path. Swappable for a CDN-backed store without touching the
// domain model.
type DiskMediaStore struct {
	Dir string
}

var Media MediaStore = &DiskMediaStore{Dir: "./public/uploads"}

func (s *DiskMediaStore) Store(data []byte, ext string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("media dir: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("media write: %w", err)
	}

	return "/uploads/" + name, nil
}
