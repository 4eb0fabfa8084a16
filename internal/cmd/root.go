package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/logparse/internal/config"
	"github.com/harrison/logparse/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for logparse
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logparse",
		Short: "Parse and analyze agent session logs",
		Long: `Logparse turns semi-structured agent session logs into typed entries
and derives statistics and patterns from them.

It parses .log files line by line with resilient error recovery, then
runs timing, agent, and pattern analyzers over the aggregated session
to surface error bursts, long gaps, and high-activity agents.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Global flags, available to every subcommand
	cmd.PersistentFlags().String("config", "", "Path to config file (default: .logparse/config.yaml)")
	cmd.PersistentFlags().String("format", "text", "Output format: text, table, or json")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("log-level", "info", "Log verbosity: trace, debug, info, warn, error")

	// Add subcommands
	cmd.AddCommand(NewParseCommand())
	cmd.AddCommand(NewAnalyzeCommand())
	cmd.AddCommand(NewQueryCommand())
	cmd.AddCommand(NewBenchCommand())

	return cmd
}

// resolveConfig loads configuration for a command run and applies flag
// overrides. An explicit --config path wins over the directory search.
// The resolved log level also rebinds the package default logger that
// library code logs through.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// CLI flags take precedence over config file values
	var logsDir, logLevel, format *string
	var noColor *bool

	if cmd.Flags().Changed("logs-dir") {
		v, _ := cmd.Flags().GetString("logs-dir")
		logsDir = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		format = &v
	}
	if cmd.Flags().Changed("no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		noColor = &v
	}

	cfg.MergeWithFlags(logsDir, logLevel, format, noColor)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.SetDefault(logger.NewStandardLogger(cfg.LogLevel))

	return cfg, nil
}
