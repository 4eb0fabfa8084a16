package cmd

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/logparse/internal/analyzer"
	"github.com/harrison/logparse/internal/discovery"
	"github.com/harrison/logparse/internal/logger"
	"github.com/harrison/logparse/internal/parser"
	"github.com/harrison/logparse/internal/session"
)

// analyzerProgressEvery controls how often the analyzer loop reports progress
const analyzerProgressEvery = 25

// NewBenchCommand creates the 'logparse bench' command
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark parse and analyzer throughput",
		Long: `Repeatedly parse the first .log file found in the logs directory and
time each pass, then time the three analyzers over the parsed session.

Reports average, minimum, and maximum times in milliseconds.`,
		RunE: runBench,
	}

	// Add flags
	cmd.Flags().Int("iterations", 100, "Number of benchmark iterations")
	cmd.Flags().String("logs-dir", ".claude/runtime/logs", "Directory scanned for .log files")

	return cmd
}

// runBench executes the bench command
func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return fmt.Errorf("failed to get iterations flag: %w", err)
	}

	fmt.Fprintf(out, "Running benchmarks with %d iterations\n", iterations)

	files, err := discovery.FindLogFiles(cfg.LogsDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No log files found for benchmarking")
		return nil
	}
	testFile := files[0]

	fmt.Fprintf(out, "Benchmarking with file: %s\n", testFile)
	fmt.Fprintln(out, strings.Repeat("=", 80))

	parseTimes := make([]float64, 0, iterations)

	fmt.Fprintln(out, "\nRunning parse benchmarks...")
	for i := 0; i < iterations; i++ {
		start := time.Now()
		entries, err := parser.ParseFile(testFile)
		if err != nil {
			return err
		}
		parseTimes = append(parseTimes, float64(time.Since(start).Microseconds())/1000.0)

		if i == 0 {
			fmt.Fprintf(out, "  First run parsed %d entries\n", len(entries))
		}

		if (i+1)%10 == 0 {
			fmt.Fprint(out, ".")
			if (i+1)%50 == 0 {
				fmt.Fprintf(out, " %d/%d\n", i+1, iterations)
			}
		}
	}
	fmt.Fprintln(out)

	avgTime, minTime, maxTime := summarize(parseTimes)

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(out, "BENCHMARK RESULTS")
	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintln(out, "Parse Performance:")
	fmt.Fprintf(out, "  Iterations: %d\n", iterations)
	fmt.Fprintf(out, "  Average time: %.2fms\n", avgTime)
	fmt.Fprintf(out, "  Min time: %.2fms\n", minTime)
	fmt.Fprintf(out, "  Max time: %.2fms\n", maxTime)

	// A parse failure here skips the analyzer phase rather than failing the run
	if entries, err := parser.ParseFile(testFile); err == nil {
		sess := session.NewFromEntries("bench", entries)

		log := logger.NewConsoleLogger(out, cfg.LogLevel)
		analyzerTimes := make([]float64, 0, iterations)

		fmt.Fprintln(out, "\nRunning analyzer benchmarks...")
		for i := 0; i < iterations; i++ {
			start := time.Now()

			timing := analyzer.NewTimingAnalyzer()
			_, _ = timing.Analyze(sess)

			agents := analyzer.NewAgentAnalyzer()
			_, _ = agents.Analyze(sess)

			patterns := analyzer.NewPatternAnalyzer()
			_, _ = patterns.Analyze(sess)

			analyzerTimes = append(analyzerTimes, float64(time.Since(start).Microseconds())/1000.0)

			if (i+1)%analyzerProgressEvery == 0 {
				log.LogProgress(i+1, iterations)
			}
		}

		avgAnalyzer, minAnalyzer, maxAnalyzer := summarize(analyzerTimes)

		fmt.Fprintln(out, "\nAnalyzer Performance (all 3 analyzers):")
		fmt.Fprintf(out, "  Average time: %.2fms\n", avgAnalyzer)
		fmt.Fprintf(out, "  Min time: %.2fms\n", minAnalyzer)
		fmt.Fprintf(out, "  Max time: %.2fms\n", maxAnalyzer)
	}

	fmt.Fprintln(out, strings.Repeat("=", 80))

	return nil
}

// summarize returns the average, minimum, and maximum of the samples
func summarize(samples []float64) (avg, min, max float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}

	min = math.Inf(1)
	max = math.Inf(-1)
	sum := 0.0
	for _, s := range samples {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return sum / float64(len(samples)), min, max
}
