package quiz

import "quizhub/internal/match"

// EventKind identifies a session event.
type EventKind int

const (
	// EventQuestionChanged signals the visible question index changed.
	EventQuestionChanged EventKind = iota
	// EventAnswerSubmitted signals an answer was frozen.
	EventAnswerSubmitted
	// EventMatchingStarted signals a matching interlude began.
	EventMatchingStarted
	// EventMatchingResolved signals the interlude reported its outcome.
	EventMatchingResolved
	// EventSessionFailed signals terminal failure.
	EventSessionFailed
	// EventSessionCompleted signals normal completion.
	EventSessionCompleted
)

// Event carries a session update for the presentation layer. SessionID ties
// events to the emitting session when several run in one process lifetime.
type Event struct {
	Kind         EventKind
	SessionID    string
	Index        int
	Record       AnswerRecord
	PairSourceID string
	Outcome      match.Outcome
	Result       Result
}

// Sink consumes session events. A nil sink discards them.
type Sink func(Event)

func (s Sink) emit(event Event) {
	if s != nil {
		s(event)
	}
}
