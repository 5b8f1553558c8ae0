package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLogDir returns the directory for the run log, checking the
// TOUCHP_LOG_DIR environment variable first and falling back to the XDG
// state default ~/.local/state/touchp/log.
func DefaultLogDir() (string, error) {
	if dir := os.Getenv("TOUCHP_LOG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "state", "touchp", "log"), nil
}
