// Package match implements the timed matching mini-game. A session holds a
// fixed pair set, a tick countdown, and per-item match state; a single wrong
// match or a timeout fails it, matching every pair succeeds it.
package match

import (
	"errors"
	"fmt"
	"math/rand"

	"quizhub/internal/shuffle"
)

// DefaultTicks is the countdown length in ticks (one tick per second).
const DefaultTicks = 60

// DefaultWarnThreshold is the remaining-ticks boundary for the visual warning.
const DefaultWarnThreshold = 10

// ErrTerminal reports an operation against a finished session.
var ErrTerminal = errors.New("matching session already resolved")

// Pair is one left/right value pair to be matched.
type Pair struct {
	Left  string
	Right string
}

// Outcome is the result reported to the owning quiz session.
type Outcome int

const (
	// OutcomeSuccess means every pair was matched before the countdown ran out.
	OutcomeSuccess Outcome = iota
	// OutcomeFail means a wrong match or a timeout.
	OutcomeFail
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseSucceeded
	PhaseFailed
)

// Config describes a matching session.
type Config struct {
	LeftTitle  string
	RightTitle string
	Pairs      []Pair
	// Ticks is the countdown length; DefaultTicks when zero.
	Ticks int
	// WarnThreshold is the warning boundary; DefaultWarnThreshold when zero.
	WarnThreshold int
	// Rand shuffles the displayed right column; clock-seeded when nil.
	Rand *rand.Rand
	// Sink receives session events.
	Sink Sink
}

// Session is the matching mini-game state machine. It owns no timer: the
// caller delivers countdown steps through Tick on its own event loop.
type Session struct {
	leftTitle  string
	rightTitle string
	expected   map[string]string
	leftItems  []string
	rightItems []string
	matched    map[string]string
	remaining  int
	warnAt     int
	phase      Phase
	failReason Reason
	sink       Sink
}

// NewSession validates the pair set and starts a session with a full countdown.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Pairs) == 0 {
		return nil, errors.New("matching session requires at least one pair")
	}
	expected := make(map[string]string, len(cfg.Pairs))
	rights := make(map[string]struct{}, len(cfg.Pairs))
	leftItems := make([]string, 0, len(cfg.Pairs))
	rightValues := make([]string, 0, len(cfg.Pairs))
	for i, pair := range cfg.Pairs {
		if pair.Left == "" || pair.Right == "" {
			return nil, fmt.Errorf("pair %d has an empty side", i)
		}
		if _, dup := expected[pair.Left]; dup {
			return nil, fmt.Errorf("duplicate left value %q", pair.Left)
		}
		if _, dup := rights[pair.Right]; dup {
			return nil, fmt.Errorf("duplicate right value %q", pair.Right)
		}
		expected[pair.Left] = pair.Right
		rights[pair.Right] = struct{}{}
		leftItems = append(leftItems, pair.Left)
		rightValues = append(rightValues, pair.Right)
	}
	ticks := cfg.Ticks
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	warnAt := cfg.WarnThreshold
	if warnAt <= 0 {
		warnAt = DefaultWarnThreshold
	}
	return &Session{
		leftTitle:  cfg.LeftTitle,
		rightTitle: cfg.RightTitle,
		expected:   expected,
		leftItems:  leftItems,
		rightItems: shuffle.Slice(cfg.Rand, rightValues),
		matched:    make(map[string]string, len(cfg.Pairs)),
		remaining:  ticks,
		warnAt:     warnAt,
		phase:      PhaseActive,
		sink:       cfg.Sink,
	}, nil
}

// Titles returns the display titles for the two columns.
func (s *Session) Titles() (string, string) { return s.leftTitle, s.rightTitle }

// LeftItems returns the left column in source order.
func (s *Session) LeftItems() []string { return s.leftItems }

// RightItems returns the right column in its shuffled display order.
func (s *Session) RightItems() []string { return s.rightItems }

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Remaining returns the ticks left on the countdown.
func (s *Session) Remaining() int { return s.remaining }

// Warning reports whether the countdown is inside the warning window.
func (s *Session) Warning() bool { return s.phase == PhaseActive && s.remaining <= s.warnAt }

// MatchedCount returns how many pairs have been matched so far.
func (s *Session) MatchedCount() int { return len(s.matched) }

// TotalPairs returns the size of the pair set.
func (s *Session) TotalPairs() int { return len(s.expected) }

// Matched reports whether a left or right value has already been matched.
func (s *Session) Matched(value string) bool {
	if _, ok := s.matched[value]; ok {
		return true
	}
	for _, right := range s.matched {
		if right == value {
			return true
		}
	}
	return false
}

// AttemptMatch checks a proposed left/right pairing. A mismatch, including an
// unknown left value, fails the whole session at once. Matching the final
// pair succeeds it regardless of remaining time.
func (s *Session) AttemptMatch(left, right string) error {
	if s.phase != PhaseActive {
		return ErrTerminal
	}
	if s.Matched(left) || s.Matched(right) {
		return fmt.Errorf("value already matched")
	}
	expected, ok := s.expected[left]
	if !ok || expected != right {
		s.resolve(PhaseFailed, ReasonMismatch)
		return nil
	}
	s.matched[left] = right
	s.sink.emit(Event{Kind: EventPairMatched, Left: left, Right: right})
	if len(s.matched) == len(s.expected) {
		s.resolve(PhaseSucceeded, "")
	}
	return nil
}

// Tick advances the countdown by one step. Ticks against a resolved session
// are ignored, so a tick already in flight at termination cannot fire into a
// dead session.
func (s *Session) Tick() {
	if s.phase != PhaseActive {
		return
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.resolve(PhaseFailed, ReasonTimeout)
		return
	}
	s.sink.emit(Event{Kind: EventTick, Remaining: s.remaining, Warning: s.Warning()})
}

// Outcome returns the terminal outcome. Valid only after the session resolved.
func (s *Session) Outcome() (Outcome, bool) {
	switch s.phase {
	case PhaseSucceeded:
		return OutcomeSuccess, true
	case PhaseFailed:
		return OutcomeFail, true
	default:
		return 0, false
	}
}

// FailReason returns why a failed session failed. Informational only.
func (s *Session) FailReason() Reason {
	return s.failReason
}

func (s *Session) resolve(phase Phase, reason Reason) {
	s.phase = phase
	s.failReason = reason
	outcome := OutcomeFail
	if phase == PhaseSucceeded {
		outcome = OutcomeSuccess
	}
	s.sink.emit(Event{Kind: EventResolved, Outcome: outcome, Reason: reason, Remaining: s.remaining})
}
