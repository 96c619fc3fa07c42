// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes all stored rows to dataDir/export.yaml and returns
// the path written.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	path := filepath.Join(s.dataDir, "export.yaml")
	data, err := yaml.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportJSON writes all stored rows to dataDir/export.json and returns
// the path written.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	path := filepath.Join(s.dataDir, "export.json")
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportCSV writes all stored rows to dataDir/export.csv and returns
// the path written.
func (s *Store) ExportCSV(ctx context.Context) (string, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	path := filepath.Join(s.dataDir, "export.csv")
	if err := WriteCSVFile(path, rows); err != nil {
		return "", err
	}
	return path, nil
}
