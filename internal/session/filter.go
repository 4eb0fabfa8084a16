package session

import (
	"strings"
)

// FilterCriteria defines dimensions for filtering entries
type FilterCriteria struct {
	Agent    string // Substring match against the agent name (case-sensitive)
	Contains string // Substring match against the message text (case-insensitive)
}

// IsZero reports whether no criteria are set
func (fc FilterCriteria) IsZero() bool {
	return fc.Agent == "" && fc.Contains == ""
}

// FilterEntries returns the entries matching all criteria (AND logic).
// Zero criteria match everything.
func FilterEntries(entries []Entry, criteria FilterCriteria) []Entry {
	if criteria.IsZero() {
		return entries
	}

	var filtered []Entry
	for _, entry := range entries {
		if matchesFilter(entry, criteria) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// matchesFilter checks one entry against all filter criteria
func matchesFilter(entry Entry, criteria FilterCriteria) bool {
	// Agent filter matches against agent names only; entries without an
	// agent never match it
	if criteria.Agent != "" {
		if entry.AgentName == "" || !strings.Contains(entry.AgentName, criteria.Agent) {
			return false
		}
	}

	if criteria.Contains != "" {
		if !strings.Contains(strings.ToLower(entry.Message), strings.ToLower(criteria.Contains)) {
			return false
		}
	}

	return true
}
