package analyzer

import (
	"testing"
	"time"

	"github.com/harrison/logparse/internal/session"
)

func TestPatternAnalyzerErrorBurst(t *testing.T) {
	sess := sessionOf(
		entryAt(0, session.KindError, "first failure"),
		entryAt(100*time.Millisecond, session.KindError, "second failure"),
		entryAt(200*time.Millisecond, session.KindError, "third failure"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	patterns := analysis.Patterns
	if len(patterns) != 2 {
		t.Fatalf("len(patterns) = %d, want 2 (burst + no-agent marker)", len(patterns))
	}
	burst := patterns[0]
	if burst.Type != PatternErrorBurst {
		t.Errorf("patterns[0].Type = %v, want %v", burst.Type, PatternErrorBurst)
	}
	if burst.Count != 3 {
		t.Errorf("Count = %d, want 3", burst.Count)
	}
	if burst.DurationSecs != 0.2 {
		t.Errorf("DurationSecs = %v, want 0.2", burst.DurationSecs)
	}
	if patterns[1].Type != PatternNoAgentActivity {
		t.Errorf("patterns[1].Type = %v, want %v", patterns[1].Type, PatternNoAgentActivity)
	}
}

func TestPatternAnalyzerBurstBelowRate(t *testing.T) {
	sess := sessionOf(
		entryAt(0, session.KindError, "slow failure"),
		entryAt(time.Second, session.KindError, "slow failure"),
		entryAt(2*time.Second, session.KindError, "slow failure"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for _, p := range analysis.Patterns {
		if p.Type == PatternErrorBurst {
			t.Errorf("unexpected burst: %+v", p)
		}
	}
}

func TestPatternAnalyzerOverlappingBursts(t *testing.T) {
	sess := sessionOf(
		entryAt(0, session.KindError, "failure"),
		entryAt(100*time.Millisecond, session.KindError, "failure"),
		entryAt(200*time.Millisecond, session.KindError, "failure"),
		entryAt(300*time.Millisecond, session.KindError, "failure"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	// Windows over errors 0-2 and 1-3 each report their own burst
	bursts := 0
	for _, p := range analysis.Patterns {
		if p.Type == PatternErrorBurst {
			bursts++
		}
	}
	if bursts != 2 {
		t.Errorf("bursts = %d, want 2", bursts)
	}
}

func TestPatternAnalyzerZeroSpanBurstIgnored(t *testing.T) {
	sess := sessionOf(
		entryAt(0, session.KindError, "same instant"),
		entryAt(0, session.KindError, "same instant"),
		entryAt(0, session.KindError, "same instant"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for _, p := range analysis.Patterns {
		if p.Type == PatternErrorBurst {
			t.Errorf("unexpected burst for zero span: %+v", p)
		}
	}
}

func TestPatternAnalyzerLongGap(t *testing.T) {
	sess := sessionOf(
		entryAt(0, session.KindInfo, "before the silence"),
		entryAt(400*time.Second, session.KindInfo, "after the silence"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	patterns := analysis.Patterns
	if len(patterns) != 2 {
		t.Fatalf("len(patterns) = %d, want 2 (gap + no-agent marker)", len(patterns))
	}
	gap := patterns[0]
	if gap.Type != PatternLongGap {
		t.Errorf("patterns[0].Type = %v, want %v", gap.Type, PatternLongGap)
	}
	if gap.GapSecs != 400.0 {
		t.Errorf("GapSecs = %v, want 400.0", gap.GapSecs)
	}
}

func TestPatternAnalyzerGapAtThresholdIgnored(t *testing.T) {
	// The gap must be strictly greater than the threshold
	sess := sessionOf(
		entryAt(0, session.KindInfo, "before"),
		entryAt(300*time.Second, session.KindInfo, "after"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for _, p := range analysis.Patterns {
		if p.Type == PatternLongGap {
			t.Errorf("unexpected gap at exact threshold: %+v", p)
		}
	}
}

func TestPatternAnalyzerAgentActivity(t *testing.T) {
	entries := make([]session.Entry, 0)
	for i := 0; i < 10; i++ {
		entries = append(entries, agentEntry(time.Duration(i)*time.Second, "builder", nil))
	}
	entries = append(entries, agentEntry(11*time.Second, "checker", nil))

	analysis, err := NewPatternAnalyzer().Analyze(sessionOf(entries...))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	patterns := analysis.Patterns
	if len(patterns) != 1 {
		t.Fatalf("len(patterns) = %d, want 1", len(patterns))
	}
	activity := patterns[0]
	if activity.Type != PatternAgentActivity {
		t.Errorf("Type = %v, want %v", activity.Type, PatternAgentActivity)
	}
	if activity.AgentName != "builder" {
		t.Errorf("AgentName = %q, want %q", activity.AgentName, "builder")
	}
	if activity.Count != 10 {
		t.Errorf("Count = %d, want 10", activity.Count)
	}
}

func TestPatternAnalyzerActivitySortedByName(t *testing.T) {
	p := NewPatternAnalyzerWithThresholds(DefaultErrorBurstRate, DefaultLongGapSecs, 2)
	sess := sessionOf(
		agentEntry(0, "zeta", nil),
		agentEntry(time.Second, "zeta", nil),
		agentEntry(2*time.Second, "alpha", nil),
		agentEntry(3*time.Second, "alpha", nil),
	)

	analysis, err := p.Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	patterns := analysis.Patterns
	if len(patterns) != 2 {
		t.Fatalf("len(patterns) = %d, want 2", len(patterns))
	}
	if patterns[0].AgentName != "alpha" || patterns[1].AgentName != "zeta" {
		t.Errorf("activity order = %q, %q, want alpha, zeta",
			patterns[0].AgentName, patterns[1].AgentName)
	}
}

func TestPatternAnalyzerNoAgentMarker(t *testing.T) {
	sess := sessionOf(
		entryAt(0, session.KindInfo, "plain"),
		entryAt(time.Second, session.KindWarning, "still plain"),
	)

	analysis, err := NewPatternAnalyzer().Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	patterns := analysis.Patterns
	if len(patterns) != 1 {
		t.Fatalf("len(patterns) = %d, want 1", len(patterns))
	}
	if patterns[0].Type != PatternNoAgentActivity {
		t.Errorf("Type = %v, want %v", patterns[0].Type, PatternNoAgentActivity)
	}
}

func TestPatternAnalyzerEmptySession(t *testing.T) {
	analysis, err := NewPatternAnalyzer().Analyze(sessionOf())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(analysis.Patterns) != 0 {
		t.Errorf("len(patterns) = %d, want 0", len(analysis.Patterns))
	}
}

func TestPatternAnalyzerThresholdFallback(t *testing.T) {
	p := NewPatternAnalyzerWithThresholds(0, 0, 0)
	sess := sessionOf(
		entryAt(0, session.KindInfo, "before"),
		entryAt(400*time.Second, session.KindInfo, "after"),
	)

	analysis, err := p.Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	// 400s exceeds the 300s default the zero value fell back to
	found := false
	for _, pat := range analysis.Patterns {
		if pat.Type == PatternLongGap {
			found = true
		}
	}
	if !found {
		t.Error("long gap not detected with fallback thresholds")
	}
}

func TestPatternAnalyzerDetectionOrder(t *testing.T) {
	p := NewPatternAnalyzerWithThresholds(DefaultErrorBurstRate, DefaultLongGapSecs, 1)
	sess := sessionOf(
		entryAt(0, session.KindError, "failure"),
		entryAt(100*time.Millisecond, session.KindError, "failure"),
		entryAt(200*time.Millisecond, session.KindError, "failure"),
		entryAt(400*time.Second, session.KindInfo, "resumed"),
		agentEntry(401*time.Second, "builder", nil),
	)

	analysis, err := p.Analyze(sess)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	patterns := analysis.Patterns
	wantTypes := []PatternType{PatternErrorBurst, PatternLongGap, PatternAgentActivity}
	if len(patterns) != len(wantTypes) {
		t.Fatalf("len(patterns) = %d, want %d", len(patterns), len(wantTypes))
	}
	for i, want := range wantTypes {
		if patterns[i].Type != want {
			t.Errorf("patterns[%d].Type = %v, want %v", i, patterns[i].Type, want)
		}
	}
}
