package session

import (
	"strings"
	"time"
)

// EntryKind classifies a parsed log entry
type EntryKind string

// Entry kinds produced by the parser
const (
	KindAgentInvocation EntryKind = "agent_invocation"
	KindInfo            EntryKind = "info"
	KindWarning         EntryKind = "warning"
	KindError           EntryKind = "error"
	KindDecision        EntryKind = "decision"
	KindUnknown         EntryKind = "unknown"
)

// String returns the kind's wire value
func (k EntryKind) String() string {
	return string(k)
}

// KindFromLevel maps a log level keyword to an EntryKind.
// Matching is case-insensitive. Unrecognized keywords map to KindUnknown
// rather than failing, so unexpected levels still produce entries.
func KindFromLevel(level string) EntryKind {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "INFO":
		return KindInfo
	case "WARN", "WARNING":
		return KindWarning
	case "ERROR":
		return KindError
	case "AGENT":
		return KindAgentInvocation
	case "DECISION":
		return KindDecision
	default:
		return KindUnknown
	}
}

// Entry represents a single parsed log line
type Entry struct {
	Timestamp  time.Time `json:"timestamp"`             // Always UTC
	Kind       EntryKind `json:"kind"`                  // Classification from the level keyword
	Message    string    `json:"message"`               // Text after the level keyword
	AgentName  string    `json:"agent,omitempty"`       // Empty when the line names no agent
	DurationMS *int64    `json:"duration_ms,omitempty"` // nil when no duration was recorded
}

// HasAgent reports whether the entry names an agent
func (e *Entry) HasAgent() bool {
	return e.AgentName != ""
}

// Session groups ordered entries parsed from one or more log files
type Session struct {
	ID        string     `json:"id"`
	Entries   []Entry    `json:"entries"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// NewFromEntries builds a session from already-parsed entries.
// StartTime is the first entry's timestamp; an empty entry list falls back
// to the current time. EndTime is the last entry's timestamp, or nil when
// there are no entries.
func NewFromEntries(id string, entries []Entry) *Session {
	s := &Session{
		ID:      id,
		Entries: entries,
	}

	if len(entries) > 0 {
		s.StartTime = entries[0].Timestamp
		end := entries[len(entries)-1].Timestamp
		s.EndTime = &end
	} else {
		s.StartTime = time.Now().UTC()
	}

	return s
}
