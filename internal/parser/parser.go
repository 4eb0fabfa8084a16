// Package parser converts agent session logs in the
// "[timestamp] LEVEL: message" line format into session entries.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harrison/logparse/internal/logger"
	"github.com/harrison/logparse/internal/session"
)

// Timestamp layouts tried in order. RFC3339 covers explicit offsets and
// trailing Z; the naive forms are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseLine parses a single log line into an Entry.
// The first ']' closes the timestamp and the first ':' after it separates
// the level keyword from the message. Lines without a ':' become unknown
// entries whose message is the whole remainder. Agent names and durations
// are never extracted from message text; entries carrying them are built
// programmatically.
func ParseLine(line string) (session.Entry, error) {
	if !strings.HasPrefix(line, "[") {
		return session.Entry{}, &MalformedEntryError{Details: "line does not start with '['"}
	}

	end := strings.Index(line, "]")
	if end < 0 {
		return session.Entry{}, &MalformedEntryError{Details: "missing closing ']' after timestamp"}
	}

	ts, err := parseTimestamp(line[1:end])
	if err != nil {
		return session.Entry{}, err
	}

	rest := strings.TrimSpace(line[end+1:])
	kind := session.KindUnknown
	message := rest
	if colon := strings.Index(rest, ":"); colon >= 0 {
		kind = session.KindFromLevel(rest[:colon])
		message = strings.TrimSpace(rest[colon+1:])
	}

	return session.Entry{
		Timestamp: ts,
		Kind:      kind,
		Message:   message,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, &InvalidTimestampError{Value: value}
}

// ParseFile reads a log file and returns its entries in file order.
// Gracefully handles malformed lines by skipping them with warning logs;
// only I/O failures abort parsing
func ParseFile(path string) ([]session.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	entries := make([]session.Entry, 0)

	scanner := bufio.NewScanner(file)
	// Increase buffer size for long lines (message payloads can be very long)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024) // 10MB max line size
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			// Log warning but continue parsing - graceful degradation
			var malformed *MalformedEntryError
			if errors.As(err, &malformed) {
				malformed.Line = lineNum
				logger.Default().LogWarn(fmt.Sprintf("skipping %v", malformed))
			} else {
				logger.Default().LogWarn(fmt.Sprintf("skipping line %d: %v", lineNum, err))
			}
			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}

	return entries, nil
}
