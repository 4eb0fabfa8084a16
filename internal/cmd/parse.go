package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/logparse/internal/parser"
	"github.com/harrison/logparse/internal/report"
	"github.com/harrison/logparse/internal/session"
)

// parsePreviewLimit caps how many entries the parse command prints
const parsePreviewLimit = 10

// NewParseCommand creates the 'logparse parse' command
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <session-file>",
		Short: "Parse a single session log file",
		Long: `Parse one session log file into typed entries and print a preview.

The first ten entries are shown with agent names and durations where
present, followed by per-kind totals. Malformed lines are skipped with
a warning instead of aborting the parse.

With --format json the entries are emitted as JSON instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}

	return cmd
}

// runParse executes the parse command
func runParse(cmd *cobra.Command, args []string) error {
	sessionPath := args[0]
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// JSON keeps stdout machine-readable: no banner, no preview
	if cfg.Format == report.FormatJSON {
		entries, err := parser.ParseFile(sessionPath)
		if err != nil {
			return err
		}
		return report.WriteJSON(out, entries)
	}

	fmt.Fprintf(out, "Parsing session: %s\n", sessionPath)

	entries, err := parser.ParseFile(sessionPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nParsed %d log entries:\n", len(entries))
	fmt.Fprintln(out, strings.Repeat("-", 80))

	if err := report.WriteEntries(out, entries, parsePreviewLimit); err != nil {
		return err
	}

	return report.WriteKindCounts(out, len(entries), session.CountKinds(entries))
}
