package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LogparseHome returns the logparse home directory
// Priority order:
//  1. LOGPARSE_HOME environment variable (if set)
//  2. $HOME/.logparse
//
// The directory is only resolved, never created; logparse reads a global
// config.yaml from it when a project has no local config.
func LogparseHome() (string, error) {
	// Try env var first
	if home := os.Getenv("LOGPARSE_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}

	return filepath.Join(userHome, ".logparse"), nil
}
