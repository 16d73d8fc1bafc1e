package app

import (
	"fmt"

	"quizhub/internal/match"
	"quizhub/internal/quiz"
)

// eventLog collects session events for the footer line. The whole app runs on
// the Bubble Tea update goroutine, so a shared pointer needs no locking.
type eventLog struct {
	last string
}

// quizSink adapts question session events into footer text.
func (l *eventLog) quizSink() quiz.Sink {
	return func(e quiz.Event) {
		if message := formatQuizEvent(e); message != "" {
			l.last = message
		}
	}
}

// matchSink adapts matching session events into footer text.
func (l *eventLog) matchSink() match.Sink {
	return func(e match.Event) {
		if message := formatMatchEvent(e); message != "" {
			l.last = message
		}
	}
}

// Last returns the most recent footer message.
func (l *eventLog) Last() string {
	if l == nil {
		return ""
	}
	return l.last
}

// formatQuizEvent creates a short footer message for a session event.
func formatQuizEvent(event quiz.Event) string {
	switch event.Kind {
	case quiz.EventQuestionChanged:
		return fmt.Sprintf("Question %d", event.Index+1)
	case quiz.EventAnswerSubmitted:
		if event.Record.IsCorrect {
			return fmt.Sprintf("Q%d correct", event.Index+1)
		}
		return fmt.Sprintf("Q%d incorrect", event.Index+1)
	case quiz.EventMatchingStarted:
		return "Matching pop quiz!"
	case quiz.EventMatchingResolved:
		if event.Outcome == match.OutcomeSuccess {
			return "Matching survived"
		}
		return "Matching failed"
	case quiz.EventSessionFailed:
		return "Session failed"
	case quiz.EventSessionCompleted:
		return fmt.Sprintf("Completed: %d/%d (%d%%)", event.Result.Score, event.Result.Total, event.Result.Percent)
	}
	return ""
}

// formatMatchEvent creates a short footer message for a matching event.
func formatMatchEvent(event match.Event) string {
	switch event.Kind {
	case match.EventPairMatched:
		return fmt.Sprintf("Matched %s", event.Left)
	case match.EventTick:
		if event.Warning {
			return fmt.Sprintf("%ds left!", event.Remaining)
		}
		return ""
	case match.EventResolved:
		if event.Outcome == match.OutcomeSuccess {
			return "All pairs matched"
		}
		if event.Reason == match.ReasonTimeout {
			return "Time ran out"
		}
		return "Wrong match"
	}
	return ""
}
