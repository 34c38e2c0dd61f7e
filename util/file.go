package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteOutputFile writes data to dir/<uuid><ext>, creating dir if needed, and
// returns the path written.
func WriteOutputFile(dir string, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", fmt.Errorf("could not create output dir %v: %w", dir, err)
	}
	path := filepath.Join(dir, uuid.New().String()+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("could not write %v: %w", path, err)
	}
	return path, nil
}
