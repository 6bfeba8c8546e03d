package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"unitlite/internal/domain"
)

// Save writes the run to the configured output file.
func (s *FileStorage) Save(output *domain.RunOutput) error {
	data, err := s.marshal(output)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run from the configured output file.
func (s *FileStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	var output domain.RunOutput
	switch s.cfg.Output.Format {
	case "yaml":
		err = yaml.Unmarshal(data, &output)
	default:
		err = json.Unmarshal(data, &output)
	}
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

func (s *FileStorage) marshal(output *domain.RunOutput) ([]byte, error) {
	if s.cfg.Output.Format == "yaml" {
		return yaml.Marshal(output)
	}
	return json.MarshalIndent(output, "", "  ")
}
