package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateContainerPath validates a path inside a container. Container paths
// must be absolute and free of traversal sequences.
func ValidateContainerPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path traversal not allowed")
	}

	cleanPath := filepath.Clean(path)

	if !filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("container path must be absolute")
	}

	return cleanPath, nil
}

// ValidatePathWithinRoot validates that a constructed path stays within the
// root directory after filepath.Join operations.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	cleanRoot := filepath.Clean(rootDir)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) && cleanPath != cleanRoot {
		return fmt.Errorf("path escapes root directory")
	}

	return nil
}
