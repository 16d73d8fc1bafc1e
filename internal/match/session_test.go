package match

import (
	"math/rand"
	"testing"
)

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Pairs == nil {
		cfg.Pairs = []Pair{
			{Left: "Crohn's", Right: "Skip lesions"},
			{Left: "UC", Right: "Continuous inflammation"},
			{Left: "Celiac", Right: "Villous atrophy"},
		}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(7))
	}
	session, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

// TestAttemptMatchMismatchFailsImmediately verifies one mistake is fatal even
// with zero prior matches and pairs remaining.
func TestAttemptMatchMismatchFailsImmediately(t *testing.T) {
	session := newTestSession(t, Config{})
	if err := session.AttemptMatch("Crohn's", "Villous atrophy"); err != nil {
		t.Fatalf("attempt match: %v", err)
	}
	if session.Phase() != PhaseFailed {
		t.Fatalf("expected failed phase, got %d", session.Phase())
	}
	outcome, done := session.Outcome()
	if !done || outcome != OutcomeFail {
		t.Fatalf("expected fail outcome, got %d done=%v", outcome, done)
	}
}

// TestAttemptMatchUnknownLeftFails verifies an unknown left value counts as a mismatch.
func TestAttemptMatchUnknownLeftFails(t *testing.T) {
	session := newTestSession(t, Config{})
	if err := session.AttemptMatch("Nope", "Skip lesions"); err != nil {
		t.Fatalf("attempt match: %v", err)
	}
	if session.Phase() != PhaseFailed {
		t.Fatalf("expected failed phase, got %d", session.Phase())
	}
}

// TestAllCorrectMatchesSucceedInAnyOrder verifies completion independent of order
// and of remaining time.
func TestAllCorrectMatchesSucceedInAnyOrder(t *testing.T) {
	session := newTestSession(t, Config{})
	session.Tick()
	pairs := [][2]string{
		{"Celiac", "Villous atrophy"},
		{"Crohn's", "Skip lesions"},
		{"UC", "Continuous inflammation"},
	}
	for _, p := range pairs {
		if err := session.AttemptMatch(p[0], p[1]); err != nil {
			t.Fatalf("attempt match %v: %v", p, err)
		}
	}
	if session.Phase() != PhaseSucceeded {
		t.Fatalf("expected success, got %d", session.Phase())
	}
	if session.MatchedCount() != session.TotalPairs() {
		t.Fatalf("expected matched=%d, got %d", session.TotalPairs(), session.MatchedCount())
	}
}

// TestTimeoutFails verifies the countdown reaching zero while active fails the
// session, externally identical to a wrong match.
func TestTimeoutFails(t *testing.T) {
	session := newTestSession(t, Config{Ticks: 3})
	var resolved []Event
	session.sink = func(e Event) {
		if e.Kind == EventResolved {
			resolved = append(resolved, e)
		}
	}
	session.Tick()
	session.Tick()
	if session.Phase() != PhaseActive {
		t.Fatalf("expected still active at remaining=%d", session.Remaining())
	}
	session.Tick()
	if session.Phase() != PhaseFailed {
		t.Fatalf("expected failed after timeout, got %d", session.Phase())
	}
	if len(resolved) != 1 || resolved[0].Outcome != OutcomeFail || resolved[0].Reason != ReasonTimeout {
		t.Fatalf("expected one fail/timeout resolution, got %+v", resolved)
	}
}

// TestTickAfterTerminalIsNoOp verifies a late tick cannot fire into a resolved session.
func TestTickAfterTerminalIsNoOp(t *testing.T) {
	session := newTestSession(t, Config{})
	if err := session.AttemptMatch("UC", "Skip lesions"); err != nil {
		t.Fatalf("attempt match: %v", err)
	}
	before := session.Remaining()
	session.Tick()
	if session.Remaining() != before {
		t.Fatalf("tick mutated a resolved session")
	}
	if err := session.AttemptMatch("Crohn's", "Skip lesions"); err != ErrTerminal {
		t.Fatalf("expected ErrTerminal, got %v", err)
	}
}

// TestWarningThreshold verifies the warning window opens at remaining <= 10.
func TestWarningThreshold(t *testing.T) {
	session := newTestSession(t, Config{Ticks: 12})
	session.Tick()
	if session.Warning() {
		t.Fatalf("warning too early at remaining=%d", session.Remaining())
	}
	session.Tick()
	if !session.Warning() {
		t.Fatalf("expected warning at remaining=%d", session.Remaining())
	}
}

// TestRightItemsArePermutation verifies display shuffle keeps every right value.
func TestRightItemsArePermutation(t *testing.T) {
	session := newTestSession(t, Config{})
	rights := map[string]bool{}
	for _, r := range session.RightItems() {
		rights[r] = true
	}
	for _, want := range []string{"Skip lesions", "Continuous inflammation", "Villous atrophy"} {
		if !rights[want] {
			t.Fatalf("right item %q missing from %v", want, session.RightItems())
		}
	}
	if len(session.RightItems()) != 3 {
		t.Fatalf("expected 3 right items, got %d", len(session.RightItems()))
	}
}

// TestMatchedValuesLeaveInteraction verifies matched values cannot be reused.
func TestMatchedValuesLeaveInteraction(t *testing.T) {
	session := newTestSession(t, Config{})
	if err := session.AttemptMatch("Crohn's", "Skip lesions"); err != nil {
		t.Fatalf("attempt match: %v", err)
	}
	if !session.Matched("Crohn's") || !session.Matched("Skip lesions") {
		t.Fatalf("expected both sides marked matched")
	}
	if err := session.AttemptMatch("Crohn's", "Continuous inflammation"); err == nil {
		t.Fatalf("expected rejection for a matched left value")
	}
	if session.Phase() != PhaseActive {
		t.Fatalf("reused value must not resolve the session")
	}
}

// TestNewSessionValidation verifies pair set invariants.
func TestNewSessionValidation(t *testing.T) {
	if _, err := NewSession(Config{}); err == nil {
		t.Fatalf("expected error for empty pair set")
	}
	if _, err := NewSession(Config{Pairs: []Pair{{Left: "a", Right: "b"}, {Left: "a", Right: "c"}}}); err == nil {
		t.Fatalf("expected error for duplicate left values")
	}
	if _, err := NewSession(Config{Pairs: []Pair{{Left: "a", Right: "b"}, {Left: "c", Right: "b"}}}); err == nil {
		t.Fatalf("expected error for duplicate right values")
	}
	if _, err := NewSession(Config{Pairs: []Pair{{Left: "", Right: "b"}}}); err == nil {
		t.Fatalf("expected error for empty side")
	}
}

// TestPairMatchedEvents verifies match events are emitted per pair.
func TestPairMatchedEvents(t *testing.T) {
	var matched int
	cfg := Config{Sink: func(e Event) {
		if e.Kind == EventPairMatched {
			matched++
		}
	}}
	session := newTestSession(t, cfg)
	if err := session.AttemptMatch("UC", "Continuous inflammation"); err != nil {
		t.Fatalf("attempt match: %v", err)
	}
	if matched != 1 {
		t.Fatalf("expected one pair matched event, got %d", matched)
	}
}
