package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/logparse/internal/analyzer"
	"github.com/harrison/logparse/internal/discovery"
	"github.com/harrison/logparse/internal/logger"
	"github.com/harrison/logparse/internal/parser"
	"github.com/harrison/logparse/internal/report"
	"github.com/harrison/logparse/internal/session"
)

// NewAnalyzeCommand creates the 'logparse analyze' command
func NewAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze all session logs in a directory",
		Long: `Aggregate every .log file in the logs directory into one session and
run the timing, agent, and pattern analyzers over it.

Files that fail to parse are skipped with a warning; analysis continues
with the remaining files. --since restricts the run to files modified
within the last N days.`,
		RunE: runAnalyze,
	}

	// Add flags
	cmd.Flags().String("logs-dir", ".claude/runtime/logs", "Directory scanned for .log files")
	cmd.Flags().Int("since", 0, "Only analyze files modified in the last N days (0 = all)")

	return cmd
}

// runAnalyze executes the analyze command
func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sinceDays, err := cmd.Flags().GetInt("since")
	if err != nil {
		return fmt.Errorf("failed to get since flag: %w", err)
	}

	// Progress moves to stderr when stdout carries JSON
	var status io.Writer = out
	if cfg.Format == report.FormatJSON {
		status = errOut
	}

	fmt.Fprintf(status, "Analyzing logs in: %s\n", cfg.LogsDir)

	var since time.Duration
	if sinceDays > 0 {
		fmt.Fprintf(status, "Only analyzing last %d days\n", sinceDays)
		since = time.Duration(sinceDays) * 24 * time.Hour
	}

	files, err := discovery.FindLogFilesSince(cfg.LogsDir, since)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(status, "No .log files found in directory")
		return nil
	}

	fmt.Fprintf(status, "\nFound %d log files to analyze\n", len(files))
	fmt.Fprintln(status, strings.Repeat("=", 80))

	log := logger.NewSplitLogger(out, errOut, cfg.LogLevel)

	var allEntries []session.Entry
	parsedFiles := 0
	for _, file := range files {
		entries, err := parser.ParseFile(file)
		if err != nil {
			log.LogWarn(fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		fmt.Fprintf(status, "Parsed %s: %d entries\n", file, len(entries))
		allEntries = append(allEntries, entries...)
		parsedFiles++
	}

	if len(allEntries) == 0 {
		fmt.Fprintln(status, "\nNo entries found to analyze")
		return nil
	}

	// One aggregate session spanning every parsed file, in filename order
	sess := session.NewFromEntries("aggregate-"+uuid.New().String(), allEntries)

	fmt.Fprintf(status, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(status, "ANALYSIS RESULTS")
	fmt.Fprintln(status, strings.Repeat("=", 80))

	timingStats, err := analyzer.NewTimingAnalyzer().Analyze(sess)
	if err != nil {
		return fmt.Errorf("timing analysis failed: %w", err)
	}

	agentStats, err := analyzer.NewAgentAnalyzer().Analyze(sess)
	if err != nil {
		return fmt.Errorf("agent analysis failed: %w", err)
	}
	agents := make([]session.AgentStats, 0, len(agentStats))
	for _, stats := range agentStats {
		agents = append(agents, *stats)
	}

	patterns, err := analyzer.NewPatternAnalyzerWithThresholds(
		cfg.Thresholds.ErrorBurstRate,
		cfg.Thresholds.LongGap.Seconds(),
		cfg.Thresholds.AgentActivityMin,
	).Analyze(sess)
	if err != nil {
		return fmt.Errorf("pattern analysis failed: %w", err)
	}

	analysis := report.Analysis{
		SessionID:  sess.ID,
		FileCount:  parsedFiles,
		Timing:     timingStats,
		Agents:     agents,
		Patterns:   patterns,
		KindCounts: session.CountKinds(allEntries),
	}

	opts := report.Options{
		Format: cfg.Format,
		Color:  report.ColorEnabled(out, cfg.NoColor),
		Width:  report.TerminalWidth(out),
	}
	if err := report.WriteAnalysis(out, analysis, opts); err != nil {
		return err
	}

	fmt.Fprintf(status, "\n%s\n", strings.Repeat("=", 80))

	return nil
}
