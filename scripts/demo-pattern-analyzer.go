//go:build ignore
// +build ignore

// Demo script to show the pattern analyzer in action
// Run with: go run scripts/demo-pattern-analyzer.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/logparse/internal/analyzer"
	"github.com/harrison/logparse/internal/parser"
	"github.com/harrison/logparse/internal/report"
	"github.com/harrison/logparse/internal/session"
)

func main() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Pattern Analyzer Demo")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// Demo 1: Parsing a raw log line
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 1: Parsing a Log Line")
	fmt.Println(strings.Repeat("-", 60))

	entry, err := parser.ParseLine("[2026-03-14T09:00:00Z] ERROR: connection reset by peer")
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		return
	}
	fmt.Printf("Timestamp: %s\n", entry.Timestamp.Format(time.RFC3339))
	fmt.Printf("Kind: %s\n", entry.Kind)
	fmt.Printf("Message: %s\n", entry.Message)
	fmt.Println()

	// Demo 2: Error Burst Detection
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 2: Error Burst Detection")
	fmt.Println(strings.Repeat("-", 60))

	var burst []session.Entry
	for i := 0; i < 4; i++ {
		burst = append(burst, session.Entry{
			Timestamp: base.Add(time.Duration(i) * 100 * time.Millisecond),
			Kind:      session.KindError,
			Message:   fmt.Sprintf("request %d failed", i+1),
		})
	}
	printPatterns(analyzer.NewPatternAnalyzer(), session.NewFromEntries("burst-demo", burst))

	// Demo 3: Long Gap Detection
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 3: Long Gap Detection")
	fmt.Println(strings.Repeat("-", 60))

	gapped := []session.Entry{
		{Timestamp: base, Kind: session.KindInfo, Message: "checkpoint saved"},
		{Timestamp: base.Add(10 * time.Minute), Kind: session.KindInfo, Message: "resuming work"},
	}
	printPatterns(analyzer.NewPatternAnalyzer(), session.NewFromEntries("gap-demo", gapped))

	// Demo 4: Agent Activity with Tightened Thresholds
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 4: High Agent Activity (activity min lowered to 5)")
	fmt.Println(strings.Repeat("-", 60))

	var invocations []session.Entry
	for i := 0; i < 6; i++ {
		invocations = append(invocations, session.Entry{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Kind:      session.KindAgentInvocation,
			Message:   "invoking builder",
			AgentName: "builder",
		})
	}
	tightened := analyzer.NewPatternAnalyzerWithThresholds(5.0, 300.0, 5)
	printPatterns(tightened, session.NewFromEntries("activity-demo", invocations))

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Demo Complete!")
	fmt.Println(strings.Repeat("=", 60))
}

func printPatterns(pa *analyzer.PatternAnalyzer, sess *session.Session) {
	analysis, err := pa.Analyze(sess)
	if err != nil {
		fmt.Printf("analysis failed: %v\n", err)
		return
	}

	if len(analysis.Patterns) == 0 {
		fmt.Println("No patterns detected")
	}
	for _, p := range analysis.Patterns {
		fmt.Printf("DETECTED [%s]: %s\n", p.Type, report.DescribePattern(p))
	}
	fmt.Println()
}
