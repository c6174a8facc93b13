package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveInputPath cleans relPath into an absolute path and verifies that
// a regular file exists there.
func ResolveInputPath(relPath string) (string, error) {
	fullPath, err := filepath.Abs(relPath)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a circuit file", fullPath)
	}

	return fullPath, nil
}
