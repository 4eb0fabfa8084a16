// Package discovery locates session log files on disk.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/harrison/logparse/internal/logger"
	"github.com/harrison/logparse/internal/parser"
)

// FindLogFiles scans a directory (non-recursively) for *.log files.
// Results are sorted by filename so repeated runs aggregate entries in a
// stable order.
func FindLogFiles(dir string) ([]string, error) {
	return FindLogFilesSince(dir, 0)
}

// FindLogFilesSince scans like FindLogFiles but keeps only files modified
// within the given duration of now. A zero duration disables the age filter.
func FindLogFilesSince(dir string, since time.Duration) ([]string, error) {
	expandedDir, err := expandHomeDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand home directory: %w", err)
	}

	if _, err := os.Stat(expandedDir); os.IsNotExist(err) {
		return nil, &parser.FileNotFoundError{Path: dir}
	}

	entries, err := os.ReadDir(expandedDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}

	var cutoff time.Time
	if since > 0 {
		cutoff = time.Now().Add(-since)
	}

	files := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}

		if !cutoff.IsZero() {
			info, err := entry.Info()
			if err != nil {
				logger.Default().LogWarn(fmt.Sprintf("failed to get file info for %s: %v", entry.Name(), err))
				continue
			}
			if info.ModTime().Before(cutoff) {
				continue
			}
		}

		files = append(files, filepath.Join(expandedDir, entry.Name()))
	}

	// All paths share the directory prefix, so this is filename order
	sort.Strings(files)

	return files, nil
}

// expandHomeDir expands ~ to the user's home directory
func expandHomeDir(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
