package parser

import "fmt"

// FileNotFoundError indicates the requested log file does not exist
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("log file not found: %s", e.Path)
}

// InvalidTimestampError indicates a timestamp that matched none of the
// supported layouts
type InvalidTimestampError struct {
	Value string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %q", e.Value)
}

// MalformedEntryError indicates a line that does not follow the
// "[timestamp] LEVEL: message" shape. Line is zero when the location
// is not known
type MalformedEntryError struct {
	Line    int
	Details string
}

func (e *MalformedEntryError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed entry at line %d: %s", e.Line, e.Details)
	}
	return fmt.Sprintf("malformed entry: %s", e.Details)
}
