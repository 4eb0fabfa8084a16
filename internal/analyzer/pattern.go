package analyzer

import (
	"sort"
	"time"

	"github.com/harrison/logparse/internal/session"
)

// Default detection thresholds
const (
	DefaultErrorBurstRate   = 5.0   // errors per second within a burst window
	DefaultLongGapSecs      = 300.0 // silence longer than this is a gap
	DefaultAgentActivityMin = 10    // invocations before an agent is called out
)

// burstWindow is the number of consecutive errors examined per burst check
const burstWindow = 3

// PatternType identifies a detected pattern
type PatternType string

const (
	PatternErrorBurst      PatternType = "error_burst"
	PatternLongGap         PatternType = "long_gap"
	PatternAgentActivity   PatternType = "agent_activity"
	PatternNoAgentActivity PatternType = "no_agent_activity"
)

// LogPattern represents a single detected pattern
type LogPattern struct {
	Type         PatternType `json:"type"`                    // Pattern discriminator
	Count        int         `json:"count,omitempty"`         // Errors in a burst, invocations for agent activity
	DurationSecs float64     `json:"duration_secs,omitempty"` // Burst window span
	GapSecs      float64     `json:"gap_secs,omitempty"`      // Length of a long gap
	AgentName    string      `json:"agent,omitempty"`         // Agent for activity patterns
}

// PatternAnalysis holds the patterns detected in one session, in detection order
type PatternAnalysis struct {
	Patterns []LogPattern `json:"patterns"`
}

// PatternAnalyzer detects noteworthy patterns in a session's entries
type PatternAnalyzer struct {
	errorBurstRate   float64
	longGapSecs      float64
	agentActivityMin int
}

// NewPatternAnalyzer creates a pattern analyzer with default thresholds
func NewPatternAnalyzer() *PatternAnalyzer {
	return NewPatternAnalyzerWithThresholds(DefaultErrorBurstRate, DefaultLongGapSecs, DefaultAgentActivityMin)
}

// NewPatternAnalyzerWithThresholds creates a pattern analyzer with custom
// thresholds; non-positive values fall back to the defaults
func NewPatternAnalyzerWithThresholds(burstRate, gapSecs float64, activityMin int) *PatternAnalyzer {
	if burstRate <= 0 {
		burstRate = DefaultErrorBurstRate
	}
	if gapSecs <= 0 {
		gapSecs = DefaultLongGapSecs
	}
	if activityMin <= 0 {
		activityMin = DefaultAgentActivityMin
	}
	return &PatternAnalyzer{
		errorBurstRate:   burstRate,
		longGapSecs:      gapSecs,
		agentActivityMin: activityMin,
	}
}

// Name identifies the analyzer
func (p *PatternAnalyzer) Name() string {
	return "PatternAnalyzer"
}

// Analyze runs all detectors and returns their findings in a fixed order:
// error bursts, long gaps, agent activity, then the no-agent marker
func (p *PatternAnalyzer) Analyze(sess *session.Session) (PatternAnalysis, error) {
	patterns := make([]LogPattern, 0)
	patterns = append(patterns, p.detectErrorBursts(sess.Entries)...)
	patterns = append(patterns, p.detectLongGaps(sess.Entries)...)
	patterns = append(patterns, p.detectAgentActivity(sess.Entries)...)

	if len(sess.Entries) > 0 && !anyAgent(sess.Entries) {
		patterns = append(patterns, LogPattern{Type: PatternNoAgentActivity})
	}

	return PatternAnalysis{Patterns: patterns}, nil
}

// detectErrorBursts slides a window over the error entries and reports
// every window whose rate meets the threshold. Overlapping windows each
// produce their own pattern; they are not merged.
func (p *PatternAnalyzer) detectErrorBursts(entries []session.Entry) []LogPattern {
	if len(entries) < 2 {
		return nil
	}

	errorTimes := make([]time.Time, 0)
	for _, e := range entries {
		if e.Kind == session.KindError {
			errorTimes = append(errorTimes, e.Timestamp)
		}
	}
	if len(errorTimes) < 2 {
		return nil
	}

	patterns := make([]LogPattern, 0)
	for i := 0; i+burstWindow <= len(errorTimes); i++ {
		span := errorTimes[i+burstWindow-1].Sub(errorTimes[i]).Seconds()
		if span > 0 && float64(burstWindow)/span >= p.errorBurstRate {
			patterns = append(patterns, LogPattern{
				Type:         PatternErrorBurst,
				Count:        burstWindow,
				DurationSecs: span,
			})
		}
	}
	return patterns
}

// detectLongGaps reports every adjacent pair whose spacing exceeds the
// gap threshold
func (p *PatternAnalyzer) detectLongGaps(entries []session.Entry) []LogPattern {
	if len(entries) < 2 {
		return nil
	}

	patterns := make([]LogPattern, 0)
	for i := 1; i < len(entries); i++ {
		gap := entries[i].Timestamp.Sub(entries[i-1].Timestamp).Seconds()
		if gap > p.longGapSecs {
			patterns = append(patterns, LogPattern{
				Type:    PatternLongGap,
				GapSecs: gap,
			})
		}
	}
	return patterns
}

// detectAgentActivity reports agents whose invocation count meets the
// activity threshold, sorted by name for stable output
func (p *PatternAnalyzer) detectAgentActivity(entries []session.Entry) []LogPattern {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.HasAgent() {
			counts[e.AgentName]++
		}
	}

	names := make([]string, 0)
	for name, count := range counts {
		if count >= p.agentActivityMin {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	patterns := make([]LogPattern, 0, len(names))
	for _, name := range names {
		patterns = append(patterns, LogPattern{
			Type:      PatternAgentActivity,
			Count:     counts[name],
			AgentName: name,
		})
	}
	return patterns
}

// Helper types and functions

func anyAgent(entries []session.Entry) bool {
	for _, e := range entries {
		if e.HasAgent() {
			return true
		}
	}
	return false
}
