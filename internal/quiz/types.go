// Package quiz implements the question session state machine: question
// progression, streak-based failure, matching interludes at trigger points,
// and score/result computation.
package quiz

// Question is a single multiple-choice question. Immutable once loaded; the
// display order of Options is fixed at load time.
type Question struct {
	Prompt      string
	Options     []string
	Correct     string
	Explanation string
}

// AnswerRecord freezes the learner's interaction with one question.
type AnswerRecord struct {
	Selected  string
	Submitted bool
	IsCorrect bool
}

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseAnswering means a question is visible and interactive.
	PhaseAnswering Phase = iota
	// PhaseMatching means a matching interlude suspends question flow.
	PhaseMatching
	// PhaseFailed is terminal: three wrong in a row or a matching fail.
	PhaseFailed
	// PhaseCompleted is terminal: the session finished normally.
	PhaseCompleted
)

// Direction selects the advance target.
type Direction int

const (
	Prev Direction = iota
	Next
)

// WrongStreakLimit is the consecutive-wrong count that fails a session.
const WrongStreakLimit = 3

// CelebrateThreshold is the inclusive percent boundary for the celebration signal.
const CelebrateThreshold = 80

// Result is the frozen outcome of a completed session.
type Result struct {
	Score     int
	Total     int
	Percent   int
	Celebrate bool
}
