package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/logparse/internal/analyzer"
	"github.com/harrison/logparse/internal/session"
)

// timestampLayout is the display form of entry timestamps
const timestampLayout = "2006-01-02 15:04:05"

// colorScheme defines the colors used across text reports.
// Cyan: section headers. Red: error accents.
type colorScheme struct {
	header *color.Color
	fail   *color.Color
}

// newColorScheme creates the report color scheme. When disabled, every
// color renders as plain text regardless of global color settings.
func newColorScheme(enabled bool) *colorScheme {
	s := &colorScheme{
		header: color.New(color.FgCyan, color.Bold),
		fail:   color.New(color.FgRed),
	}
	if enabled {
		s.header.EnableColor()
		s.fail.EnableColor()
	} else {
		s.header.DisableColor()
		s.fail.DisableColor()
	}
	return s
}

// writeAnalysisText renders the Timing, Agent, and Pattern sections in the
// indented section style used throughout the CLI.
func writeAnalysisText(w io.Writer, a Analysis, opts Options) error {
	scheme := newColorScheme(opts.Color)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(scheme.header.Sprint("Timing Statistics:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total duration: %.2f seconds\n", a.Timing.TotalDurationSecs)
	fmt.Fprintf(&b, "  Entry count: %d\n", a.Timing.EntryCount)
	fmt.Fprintf(&b, "  Avg time between entries: %.2fs\n", a.Timing.AvgTimeBetweenEntries)

	b.WriteString("\n")
	b.WriteString(scheme.header.Sprint("Agent Statistics:"))
	b.WriteString("\n")
	if len(a.Agents) == 0 {
		b.WriteString("  No agent invocations found\n")
	} else {
		for _, stats := range a.Agents {
			fmt.Fprintf(&b, "  %s\n", stats.Name)
			fmt.Fprintf(&b, "    Invocations: %d\n", stats.InvocationCount)
			fmt.Fprintf(&b, "    Total duration: %dms\n", stats.TotalDurationMS)
			fmt.Fprintf(&b, "    Avg duration: %.2fms\n", stats.AvgDurationMS)
		}
	}

	b.WriteString("\n")
	b.WriteString(scheme.header.Sprint("Pattern Detection:"))
	b.WriteString("\n")
	if len(a.Patterns.Patterns) == 0 {
		b.WriteString("  No significant patterns detected\n")
	} else {
		for _, p := range a.Patterns.Patterns {
			line := DescribePattern(p)
			if p.Type == analyzer.PatternErrorBurst {
				line = scheme.fail.Sprint(line)
			}
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteEntries writes up to limit entries in preview form: an index line
// with a truncated message, then indented agent and duration lines when
// present, then an overflow count.
func WriteEntries(w io.Writer, entries []session.Entry, limit int) error {
	var b strings.Builder

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Fprintf(&b, "[%d] %s | %s | %s\n",
			i+1, e.Timestamp.Format(timestampLayout), e.Kind, truncateMessage(e.Message, maxMessageWidth))
		if e.HasAgent() {
			fmt.Fprintf(&b, "    Agent: %s\n", e.AgentName)
		}
		if e.DurationMS != nil {
			fmt.Fprintf(&b, "    Duration: %dms\n", *e.DurationMS)
		}
	}
	if len(entries) > limit {
		fmt.Fprintf(&b, "\n... and %d more entries\n", len(entries)-limit)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMatches writes up to limit query matches: an index line, the full
// message indented below it, an optional agent line, and a blank separator.
func WriteMatches(w io.Writer, entries []session.Entry, limit int) error {
	var b strings.Builder

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Fprintf(&b, "[%d] %s | %s\n", i+1, e.Timestamp.Format(timestampLayout), e.Kind)
		fmt.Fprintf(&b, "    %s\n", e.Message)
		if e.HasAgent() {
			fmt.Fprintf(&b, "    Agent: %s\n", e.AgentName)
		}
		b.WriteString("\n")
	}
	if len(entries) > limit {
		fmt.Fprintf(&b, "... and %d more entries\n", len(entries)-limit)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteKindCounts writes the parse summary: the entry total followed by
// per-kind counts in the order given.
func WriteKindCounts(w io.Writer, total int, counts []session.KindCount) error {
	var b strings.Builder

	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "  Total entries: %d\n", total)
	for _, kc := range counts {
		fmt.Fprintf(&b, "  %s: %d\n", kc.Kind, kc.Count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DescribePattern renders one detected pattern as a human-readable line.
func DescribePattern(p analyzer.LogPattern) string {
	switch p.Type {
	case analyzer.PatternErrorBurst:
		return fmt.Sprintf("error burst: %d errors in %.2fs", p.Count, p.DurationSecs)
	case analyzer.PatternLongGap:
		return fmt.Sprintf("long gap: %.1fs between entries", p.GapSecs)
	case analyzer.PatternAgentActivity:
		return fmt.Sprintf("high agent activity: %s (%d invocations)", p.AgentName, p.Count)
	case analyzer.PatternNoAgentActivity:
		return "no agent activity in session"
	default:
		return string(p.Type)
	}
}
