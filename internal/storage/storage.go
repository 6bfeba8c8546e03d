package storage

import (
	"unitlite/internal/config"
	"unitlite/internal/domain"
)

// Storage persists and loads the last test run (e.g. for the faills viewer).
type Storage interface {
	Save(output *domain.RunOutput) error
	Load() (*domain.RunOutput, error)
}

// FileStorage stores the last run in a single file under the configured
// output path, encoded as JSON or YAML.
type FileStorage struct {
	cfg *config.Config
}

// NewFileStorage returns a Storage that reads/writes the config's output path.
func NewFileStorage(cfg *config.Config) *FileStorage {
	return &FileStorage{cfg: cfg}
}
