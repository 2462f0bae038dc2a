package logging

import (
	"fmt"
	"os"
	"path/filepath"
)

const logFileName = "gitopsview.log"

// DefaultLogPath returns <user cache dir>/gitopsview/gitopsview.log.
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	return filepath.Join(dir, "gitopsview", logFileName), nil
}

// OpenFile opens path for appending, creating parent directories as needed.
// The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
