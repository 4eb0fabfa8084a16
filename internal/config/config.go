package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ThresholdsConfig represents pattern detection thresholds
type ThresholdsConfig struct {
	// ErrorBurstRate is the errors-per-second rate that counts as a burst
	ErrorBurstRate float64 `yaml:"error_burst_rate"`

	// LongGap is the silence between entries that counts as a gap
	LongGap time.Duration `yaml:"long_gap"`

	// AgentActivityMin is the invocation count that flags an agent as busy
	AgentActivityMin int `yaml:"agent_activity_min"`
}

// Config represents logparse configuration options
type Config struct {
	// LogsDir is the directory scanned for *.log session files
	LogsDir string `yaml:"logs_dir"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format selects the report renderer (text, table, json)
	Format string `yaml:"format"`

	// NoColor disables colored output regardless of terminal detection
	NoColor bool `yaml:"no_color"`

	// Thresholds contains pattern detection thresholds
	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogsDir:  filepath.Join(".claude", "runtime", "logs"),
		LogLevel: "info",
		Format:   "text",
		NoColor:  false,
		Thresholds: ThresholdsConfig{
			ErrorBurstRate:   5.0,
			LongGap:          5 * time.Minute,
			AgentActivityMin: 10,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	// Use a temporary struct to handle duration parsing
	type yamlThresholds struct {
		ErrorBurstRate   float64 `yaml:"error_burst_rate"`
		LongGap          string  `yaml:"long_gap"`
		AgentActivityMin int     `yaml:"agent_activity_min"`
	}
	type yamlConfig struct {
		LogsDir    string         `yaml:"logs_dir"`
		LogLevel   string         `yaml:"log_level"`
		Format     string         `yaml:"format"`
		NoColor    bool           `yaml:"no_color"`
		Thresholds yamlThresholds `yaml:"thresholds"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.LogsDir != "" {
		cfg.LogsDir = yamlCfg.LogsDir
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	// NoColor is explicitly set if present in YAML
	if yamlCfg.NoColor {
		cfg.NoColor = yamlCfg.NoColor
	}

	// Merge thresholds - need to check if the section was provided at all
	// We create a temporary unmarshal to detect which keys exist
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if thresholdsSection, exists := rawMap["thresholds"]; exists && thresholdsSection != nil {
			thresholdsMap, _ := thresholdsSection.(map[string]interface{})

			if _, exists := thresholdsMap["error_burst_rate"]; exists {
				cfg.Thresholds.ErrorBurstRate = yamlCfg.Thresholds.ErrorBurstRate
			}
			if _, exists := thresholdsMap["long_gap"]; exists {
				gap, err := time.ParseDuration(yamlCfg.Thresholds.LongGap)
				if err != nil {
					return nil, fmt.Errorf("invalid long_gap format %q: %w", yamlCfg.Thresholds.LongGap, err)
				}
				cfg.Thresholds.LongGap = gap
			}
			if _, exists := thresholdsMap["agent_activity_min"]; exists {
				cfg.Thresholds.AgentActivityMin = yamlCfg.Thresholds.AgentActivityMin
			}
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration for a project directory.
// Search order: <dir>/.logparse/config.yaml, then <logparse home>/config.yaml.
// If neither file exists, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	projectPath := filepath.Join(dir, ".logparse", "config.yaml")
	if _, err := os.Stat(projectPath); err == nil {
		return LoadConfig(projectPath)
	}

	home, err := LogparseHome()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(filepath.Join(home, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logsDir, logLevel, format *string, noColor *bool) {
	if logsDir != nil {
		c.LogsDir = *logsDir
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if format != nil {
		c.Format = *format
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	// Validate log_level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	// Validate format
	validFormats := map[string]bool{
		"text":  true,
		"table": true,
		"json":  true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q, must be one of: text, table, json", c.Format)
	}

	// Validate thresholds
	if c.Thresholds.ErrorBurstRate <= 0 {
		return fmt.Errorf("thresholds.error_burst_rate must be > 0, got %v", c.Thresholds.ErrorBurstRate)
	}
	if c.Thresholds.LongGap <= 0 {
		return fmt.Errorf("thresholds.long_gap must be > 0, got %v", c.Thresholds.LongGap)
	}
	if c.Thresholds.AgentActivityMin <= 0 {
		return fmt.Errorf("thresholds.agent_activity_min must be > 0, got %d", c.Thresholds.AgentActivityMin)
	}

	return nil
}
