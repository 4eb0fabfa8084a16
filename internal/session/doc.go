// Package session provides the core data model for parsed agent session logs.
//
// This package contains the types shared across the parser, analyzers, and
// display layers:
//   - Entry: one typed log line (timestamp, kind, message, agent, duration)
//   - Session: an ordered group of entries with start/end bounds
//   - AgentStats and TimingStats: aggregate statistic containers
//   - FilterCriteria: entry filtering for queries
//
// Entries keep the order in which they were read from disk. Aggregation over
// maps stays unordered; anything user-facing sorts at the display boundary.
package session
