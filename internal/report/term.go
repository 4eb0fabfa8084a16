package report

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// maxMessageWidth caps preview messages, measured in display cells
const maxMessageWidth = 60

// defaultWidth is assumed when the terminal width cannot be determined
const defaultWidth = 100

// ColorEnabled reports whether colored output should be produced for w.
// Color requires a terminal and is vetoed by the NO_COLOR variable or the
// noColor flag.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth reports the display width available on w, falling back to
// the COLUMNS variable and finally a fixed default.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if v, err := strconv.Atoi(cols); err == nil && v > 0 {
			return v
		}
	}
	return defaultWidth
}

// truncateMessage limits a message to the given display width, appending an
// ellipsis tail when it was cut. Widths are display cells, not bytes, so
// multibyte text truncates cleanly.
func truncateMessage(message string, width int) string {
	return runewidth.Truncate(message, width, "...")
}
