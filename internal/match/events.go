package match

// EventKind identifies a matching session event.
type EventKind int

const (
	// EventPairMatched signals a correct match of one pair.
	EventPairMatched EventKind = iota
	// EventTick signals one countdown step.
	EventTick
	// EventResolved signals session termination.
	EventResolved
)

// Reason explains why a session failed. Informational only: mismatch and
// timeout produce the same outcome.
type Reason string

const (
	ReasonMismatch Reason = "mismatch"
	ReasonTimeout  Reason = "timeout"
)

// Event carries a matching session update for the presentation layer.
type Event struct {
	Kind      EventKind
	Left      string
	Right     string
	Remaining int
	Warning   bool
	Outcome   Outcome
	Reason    Reason
}

// Sink consumes session events. A nil sink discards them.
type Sink func(Event)

func (s Sink) emit(event Event) {
	if s != nil {
		s(event)
	}
}
