package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/logparse/internal/parser"
	"github.com/harrison/logparse/internal/session"
)

func TestNewParseCommand(t *testing.T) {
	cmd := NewParseCommand()

	assert.NotNil(t, cmd)
	assert.Equal(t, "parse <session-file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestParseCommandHelp(t *testing.T) {
	stdout, _, err := executeCommand(t, "parse", "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "parse")
	assert.Contains(t, stdout, "session-file")
}

func TestParseCommandPreviewAndSummary(t *testing.T) {
	dir := t.TempDir()
	file := writeLogFile(t, dir, "session.log", strings.Join([]string{
		"[2026-03-14T09:00:00Z] INFO: starting run",
		"",
		"this line has no structure at all",
		"[2026-03-14T09:00:05Z] ERROR: build failed",
		"[2026-03-14T09:00:09Z] DECISION: retry with cached deps",
	}, "\n"))

	stdout, _, err := executeCommand(t, "parse", file)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Parsing session: "+file)
	assert.Contains(t, stdout, "Parsed 3 log entries:")
	assert.Contains(t, stdout, strings.Repeat("-", 80))

	// Blank and malformed lines are skipped, not counted
	assert.Contains(t, stdout, "[1] 2026-03-14 09:00:00 | info | starting run")
	assert.Contains(t, stdout, "[2] 2026-03-14 09:00:05 | error | build failed")
	assert.Contains(t, stdout, "[3] 2026-03-14 09:00:09 | decision | retry with cached deps")

	assert.Contains(t, stdout, "Summary:")
	assert.Contains(t, stdout, "Total entries: 3")
	assert.Contains(t, stdout, "info: 1")
	assert.Contains(t, stdout, "error: 1")
	assert.Contains(t, stdout, "decision: 1")
}

func TestParseCommandPreviewLimit(t *testing.T) {
	dir := t.TempDir()
	var lines []string
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("[2026-03-14T09:00:%02dZ] INFO: step %d", i, i))
	}
	file := writeLogFile(t, dir, "session.log", strings.Join(lines, "\n"))

	stdout, _, err := executeCommand(t, "parse", file)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Parsed 15 log entries:")
	assert.Contains(t, stdout, "[10] ")
	assert.NotContains(t, stdout, "[11] ")
	assert.Contains(t, stdout, "... and 5 more entries")

	// The summary still covers every entry, not just the preview
	assert.Contains(t, stdout, "Total entries: 15")
	assert.Contains(t, stdout, "info: 15")
}

func TestParseCommandJSONFormat(t *testing.T) {
	dir := t.TempDir()
	file := writeLogFile(t, dir, "session.log", strings.Join([]string{
		"[2026-03-14T09:00:00Z] INFO: starting run",
		"[2026-03-14T09:00:05Z] WARNING: retrying fetch",
	}, "\n"))

	stdout, _, err := executeCommand(t, "parse", "--format", "json", file)
	require.NoError(t, err)

	// JSON output must stay machine-readable: no banner, no summary
	assert.NotContains(t, stdout, "Parsing session")
	assert.NotContains(t, stdout, "Summary:")

	var entries []session.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, session.KindInfo, entries[0].Kind)
	assert.Equal(t, "starting run", entries[0].Message)
	assert.Equal(t, session.KindWarning, entries[1].Kind)
	assert.Empty(t, entries[0].AgentName)
	assert.Nil(t, entries[0].DurationMS)
}

func TestParseCommandFileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.log")

	_, _, err := executeCommand(t, "parse", missing)
	require.Error(t, err)

	var notFound *parser.FileNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.Path)
}

func TestParseCommandRequiresArgument(t *testing.T) {
	_, _, err := executeCommand(t, "parse")
	assert.Error(t, err)
}
