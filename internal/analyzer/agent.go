package analyzer

import (
	"github.com/harrison/logparse/internal/session"
)

// AgentAnalyzer accumulates per-agent invocation statistics.
// It can be fed incrementally with ProcessEntries across multiple files;
// Analyze runs against a fresh accumulator and leaves the receiver's
// state untouched.
type AgentAnalyzer struct {
	stats map[string]*session.AgentStats
}

// NewAgentAnalyzer creates an empty agent analyzer
func NewAgentAnalyzer() *AgentAnalyzer {
	return &AgentAnalyzer{
		stats: make(map[string]*session.AgentStats),
	}
}

// Name identifies the analyzer
func (a *AgentAnalyzer) Name() string {
	return "AgentAnalyzer"
}

// ProcessEntries folds entries into the accumulated per-agent stats.
// Entries without an agent name are ignored. Invocations without a
// duration still count, so the running average lags until the next
// timed invocation.
func (a *AgentAnalyzer) ProcessEntries(entries []session.Entry) {
	for _, e := range entries {
		if !e.HasAgent() {
			continue
		}
		stats, ok := a.stats[e.AgentName]
		if !ok {
			stats = session.NewAgentStats(e.AgentName)
			a.stats[e.AgentName] = stats
		}
		if e.DurationMS != nil {
			stats.AddDuration(*e.DurationMS)
		} else {
			stats.InvocationCount++
		}
	}
}

// AllStats returns the accumulated stats keyed by agent name.
// The map is unordered; display layers sort it.
func (a *AgentAnalyzer) AllStats() map[string]*session.AgentStats {
	return a.stats
}

// Lookup returns the accumulated stats for a single agent
func (a *AgentAnalyzer) Lookup(name string) (*session.AgentStats, bool) {
	stats, ok := a.stats[name]
	return stats, ok
}

// Reset discards all accumulated stats
func (a *AgentAnalyzer) Reset() {
	a.stats = make(map[string]*session.AgentStats)
}

// Analyze computes per-agent stats for a single session using a fresh
// accumulator
func (a *AgentAnalyzer) Analyze(sess *session.Session) (map[string]*session.AgentStats, error) {
	fresh := NewAgentAnalyzer()
	fresh.ProcessEntries(sess.Entries)
	return fresh.stats, nil
}
