package session

import (
	"sort"
)

// AgentStats accumulates invocation statistics for a single agent
type AgentStats struct {
	Name            string  `json:"name"`
	InvocationCount int     `json:"invocation_count"`
	TotalDurationMS int64   `json:"total_duration_ms"`
	AvgDurationMS   float64 `json:"avg_duration_ms"`
}

// NewAgentStats creates zeroed statistics for the named agent
func NewAgentStats(name string) *AgentStats {
	return &AgentStats{Name: name}
}

// AddDuration records a timed invocation and recomputes the running average.
// Untimed invocations bump InvocationCount directly instead; the average only
// reflects them after the next timed invocation triggers a recompute.
func (as *AgentStats) AddDuration(ms int64) {
	as.InvocationCount++
	as.TotalDurationMS += ms
	as.AvgDurationMS = float64(as.TotalDurationMS) / float64(as.InvocationCount)
}

// TimingStats summarizes the temporal shape of a session
type TimingStats struct {
	TotalDurationSecs     float64 `json:"total_duration_secs"`      // Span between earliest and latest timestamps
	EntryCount            int     `json:"entry_count"`              // Total entries in the session
	AvgTimeBetweenEntries float64 `json:"avg_time_between_entries"` // Mean gap between consecutive entries in seconds
}

// KindCount pairs an entry kind with its occurrence count
type KindCount struct {
	Kind  EntryKind `json:"kind"`
	Count int       `json:"count"`
}

// CountKinds aggregates entries by kind and returns counts sorted descending.
// Ties keep no particular order.
func CountKinds(entries []Entry) []KindCount {
	counts := make(map[EntryKind]int)
	for _, e := range entries {
		counts[e.Kind]++
	}

	result := make([]KindCount, 0, len(counts))
	for kind, count := range counts {
		result = append(result, KindCount{Kind: kind, Count: count})
	}

	// Sort by count descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}
