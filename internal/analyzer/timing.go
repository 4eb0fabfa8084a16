package analyzer

import (
	"github.com/harrison/logparse/internal/session"
)

// TimingAnalyzer computes duration and pacing statistics for a session
type TimingAnalyzer struct{}

// NewTimingAnalyzer creates a new timing analyzer
func NewTimingAnalyzer() *TimingAnalyzer {
	return &TimingAnalyzer{}
}

// Name identifies the analyzer
func (t *TimingAnalyzer) Name() string {
	return "TimingAnalyzer"
}

// Analyze computes the total span (max minus min timestamp) and the average
// gap between consecutive entries in arrival order. Entries are not
// re-sorted; out-of-order timestamps contribute negative gaps.
func (t *TimingAnalyzer) Analyze(sess *session.Session) (session.TimingStats, error) {
	entries := sess.Entries
	if len(entries) == 0 {
		return session.TimingStats{}, nil
	}

	minTS := entries[0].Timestamp
	maxTS := entries[0].Timestamp
	for _, e := range entries[1:] {
		if e.Timestamp.Before(minTS) {
			minTS = e.Timestamp
		}
		if e.Timestamp.After(maxTS) {
			maxTS = e.Timestamp
		}
	}

	stats := session.TimingStats{
		TotalDurationSecs: maxTS.Sub(minTS).Seconds(),
		EntryCount:        len(entries),
	}

	if len(entries) > 1 {
		var sum float64
		for i := 1; i < len(entries); i++ {
			sum += entries[i].Timestamp.Sub(entries[i-1].Timestamp).Seconds()
		}
		stats.AvgTimeBetweenEntries = sum / float64(len(entries)-1)
	}

	return stats, nil
}
