// Package analyzer derives statistics and patterns from parsed sessions.
//
// Analyzers are generic over their output type. Each one consumes a whole
// session and produces a self-contained result; a failing analyzer never
// aborts its siblings, so callers dispatch over a list and render whatever
// came back.
package analyzer

import (
	"github.com/harrison/logparse/internal/session"
)

// Analyzer is the interface implemented by all session analyzers
type Analyzer[T any] interface {
	// Analyze consumes a session and produces the analyzer's output
	Analyze(sess *session.Session) (T, error)
	// Name identifies the analyzer in reports and diagnostics
	Name() string
}

// NamedResult pairs an analyzer's output with the analyzer that produced it
type NamedResult[T any] struct {
	Name  string
	Value T
	Err   error
}

// Composite runs same-output analyzers in registration order
type Composite[T any] struct {
	analyzers []Analyzer[T]
}

// NewComposite creates a composite over the given analyzers
func NewComposite[T any](analyzers ...Analyzer[T]) *Composite[T] {
	return &Composite[T]{analyzers: analyzers}
}

// Add appends an analyzer; it runs after all previously registered ones
func (c *Composite[T]) Add(a Analyzer[T]) {
	c.analyzers = append(c.analyzers, a)
}

// RunAll runs every registered analyzer against the session.
// One analyzer failing does not stop the others; each result carries
// its own error.
func (c *Composite[T]) RunAll(sess *session.Session) []NamedResult[T] {
	results := make([]NamedResult[T], 0, len(c.analyzers))
	for _, a := range c.analyzers {
		value, err := a.Analyze(sess)
		results = append(results, NamedResult[T]{Name: a.Name(), Value: value, Err: err})
	}
	return results
}
