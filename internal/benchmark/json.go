package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON writes a run to path as indented JSON, creating parent
// directories as needed.
func SaveJSON(path string, run *Run) error {
	if err := run.Validate(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON reads a run previously written with SaveJSON.
func LoadJSON(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return &run, nil
}
