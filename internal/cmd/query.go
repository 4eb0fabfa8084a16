package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/logparse/internal/discovery"
	"github.com/harrison/logparse/internal/logger"
	"github.com/harrison/logparse/internal/parser"
	"github.com/harrison/logparse/internal/report"
	"github.com/harrison/logparse/internal/session"
)

// NewQueryCommand creates the 'logparse query' command
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search entries across session logs",
		Long: `Search every .log file in the logs directory for entries matching the
given filters.

--agent matches agent names by substring (case-sensitive); --contains
matches message text case-insensitively. Both filters must match when
both are set. Files that fail to parse are skipped.`,
		RunE: runQuery,
	}

	// Add flags
	cmd.Flags().String("agent", "", "Filter by agent name substring")
	cmd.Flags().String("contains", "", "Filter by message text (case-insensitive)")
	cmd.Flags().String("logs-dir", ".claude/runtime/logs", "Directory scanned for .log files")
	cmd.Flags().Int("limit", 20, "Maximum matches to print")

	return cmd
}

// runQuery executes the query command
func runQuery(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	agent, err := cmd.Flags().GetString("agent")
	if err != nil {
		return fmt.Errorf("failed to get agent flag: %w", err)
	}
	contains, err := cmd.Flags().GetString("contains")
	if err != nil {
		return fmt.Errorf("failed to get contains flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}

	fmt.Fprintln(out, "Querying logs")

	files, err := discovery.FindLogFiles(cfg.LogsDir)
	if err != nil {
		return err
	}

	log := logger.NewSplitLogger(out, cmd.ErrOrStderr(), cfg.LogLevel)

	var allEntries []session.Entry
	for _, file := range files {
		entries, err := parser.ParseFile(file)
		if err != nil {
			// Unreadable files are skipped; visible only when debugging
			log.LogDebug(fmt.Sprintf("skipping %s: %v", file, err))
			continue
		}
		allEntries = append(allEntries, entries...)
	}

	matches := session.FilterEntries(allEntries, session.FilterCriteria{
		Agent:    agent,
		Contains: contains,
	})

	fmt.Fprintln(out, "\nQuery Filters:")
	if agent != "" {
		fmt.Fprintf(out, "  Agent: %s\n", agent)
	}
	if contains != "" {
		fmt.Fprintf(out, "  Contains: %s\n", contains)
	}

	fmt.Fprintf(out, "\nFound %d matching entries:\n", len(matches))
	fmt.Fprintln(out, strings.Repeat("-", 80))

	return report.WriteMatches(out, matches, limit)
}
