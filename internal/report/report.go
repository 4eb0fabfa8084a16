// Package report renders parse previews, query results, and analysis
// results in text, table, and JSON formats.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harrison/logparse/internal/analyzer"
	"github.com/harrison/logparse/internal/session"
)

// Output formats accepted by the renderers
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Options control rendering across all formats
type Options struct {
	Format string // text, table, or json
	Color  bool   // colorize section headers and error accents
	Width  int    // display width available for tables
}

// Analysis bundles everything a single analysis run produced
type Analysis struct {
	SessionID  string                   `json:"session_id"`  // Aggregate session identifier
	FileCount  int                      `json:"file_count"`  // Log files that contributed entries
	Timing     session.TimingStats      `json:"timing"`      // Temporal shape of the session
	Agents     []session.AgentStats     `json:"agents"`      // Per-agent invocation statistics
	Patterns   analyzer.PatternAnalysis `json:"patterns"`    // Detected patterns in detection order
	KindCounts []session.KindCount      `json:"kind_counts"` // Entry kinds by descending count
}

// WriteAnalysis renders an analysis in the requested format. An empty
// format means text.
func WriteAnalysis(w io.Writer, a Analysis, opts Options) error {
	// Agent order is unspecified upstream; pin it at the boundary
	a.Agents = sortedAgents(a.Agents)

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return writeAnalysisText(w, a, opts)
	case FormatTable:
		return writeAnalysisTable(w, a, opts)
	case FormatJSON:
		return WriteJSON(w, a)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// WriteJSON writes any value as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sortedAgents returns a copy sorted by agent name so output never depends
// on map iteration order.
func sortedAgents(agents []session.AgentStats) []session.AgentStats {
	sorted := append([]session.AgentStats(nil), agents...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
