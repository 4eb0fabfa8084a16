package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	if ColorEnabled(&buf, false) {
		t.Error("ColorEnabled() = true for a buffer, want false")
	}
	if ColorEnabled(os.Stdout, true) {
		t.Error("ColorEnabled() = true despite noColor flag, want false")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if ColorEnabled(f, false) {
		t.Error("ColorEnabled() = true for a regular file, want false")
	}
}

func TestColorEnabledNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(os.Stdout, false) {
		t.Error("ColorEnabled() = true despite NO_COLOR, want false")
	}
}

func TestTerminalWidthColumns(t *testing.T) {
	t.Setenv("COLUMNS", "72")
	var buf bytes.Buffer
	if got := TerminalWidth(&buf); got != 72 {
		t.Errorf("TerminalWidth() = %d, want 72", got)
	}
}

func TestTerminalWidthDefault(t *testing.T) {
	t.Setenv("COLUMNS", "")
	var buf bytes.Buffer
	if got := TerminalWidth(&buf); got != 100 {
		t.Errorf("TerminalWidth() = %d, want 100", got)
	}
}

func TestTerminalWidthBadColumns(t *testing.T) {
	t.Setenv("COLUMNS", "wide")
	var buf bytes.Buffer
	if got := TerminalWidth(&buf); got != 100 {
		t.Errorf("TerminalWidth() = %d, want 100", got)
	}
}

func TestTruncateMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "short unchanged", message: "hello", want: "hello"},
		{name: "exact width unchanged", message: strings.Repeat("x", 60), want: strings.Repeat("x", 60)},
		{name: "over width truncated", message: strings.Repeat("x", 61), want: strings.Repeat("x", 57) + "..."},
		{name: "wide runes measured in cells", message: strings.Repeat("世", 40), want: strings.Repeat("世", 28) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateMessage(tt.message, maxMessageWidth); got != tt.want {
				t.Errorf("truncateMessage(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
