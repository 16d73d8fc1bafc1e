package quiz

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"quizhub/internal/match"
)

// ErrInvalidOperation reports an action requested against the wrong phase or
// question state. These are UI programming errors, never session failures.
var ErrInvalidOperation = errors.New("invalid operation for session state")

// Config describes a question session.
type Config struct {
	Title     string
	Questions []Question
	// TriggerPoints are correct-answer counts that start matching interludes,
	// strictly increasing, each consumed at most once in order.
	TriggerPoints []int
	// PairSourceIDs name the pair set for each interlude. When shorter than
	// TriggerPoints the last entry is reused.
	PairSourceIDs []string
	// Sink receives session events.
	Sink Sink
}

// Session is the question session state machine. The matching mini-game runs
// as a child session: while an interlude is pending the question flow is
// suspended, and the interlude reports back through ResolveMatching.
type Session struct {
	id           string
	title        string
	questions    []Question
	answers      map[int]AnswerRecord
	current      int
	score        int
	correctCount int
	wrongStreak  int
	triggers     []int
	pairSources  []string
	nextTrigger  int
	interludes   int
	phase        Phase
	result       Result
	sink         Sink
}

// NewSession validates the question set and starts a session on question 0.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Questions) == 0 {
		return nil, errors.New("session requires at least one question")
	}
	for i, q := range cfg.Questions {
		if q.Prompt == "" {
			return nil, fmt.Errorf("question %d has an empty prompt", i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", i)
		}
		if !contains(q.Options, q.Correct) {
			return nil, fmt.Errorf("question %d: correct option %q not among options", i, q.Correct)
		}
	}
	for i, point := range cfg.TriggerPoints {
		if point <= 0 {
			return nil, fmt.Errorf("trigger point %d must be positive, got %d", i, point)
		}
		if i > 0 && point <= cfg.TriggerPoints[i-1] {
			return nil, fmt.Errorf("trigger points must be strictly increasing at %d", i)
		}
	}
	if len(cfg.TriggerPoints) > 0 && len(cfg.PairSourceIDs) == 0 {
		return nil, errors.New("trigger points configured without a pair source")
	}
	return &Session{
		id:          uuid.NewString(),
		title:       cfg.Title,
		questions:   cfg.Questions,
		answers:     make(map[int]AnswerRecord, len(cfg.Questions)),
		triggers:    cfg.TriggerPoints,
		pairSources: cfg.PairSourceIDs,
		phase:       PhaseAnswering,
		sink:        cfg.Sink,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Title returns the module title the session was started for.
func (s *Session) Title() string { return s.title }

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// CurrentIndex returns the visible question index.
func (s *Session) CurrentIndex() int { return s.current }

// Question returns the question at index.
func (s *Session) Question(index int) (Question, bool) {
	if index < 0 || index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[index], true
}

// Answer returns the answer record for index, if any interaction happened.
func (s *Session) Answer(index int) (AnswerRecord, bool) {
	record, ok := s.answers[index]
	return record, ok
}

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// CorrectCount returns the running correct-submission count.
func (s *Session) CorrectCount() int { return s.correctCount }

// WrongStreak returns the consecutive-wrong count since the last correct answer.
func (s *Session) WrongStreak() int { return s.wrongStreak }

// Interludes returns how many matching interludes completed successfully.
func (s *Session) Interludes() int { return s.interludes }

// Select records a tentative selection for the question at index. Submission
// is final: selecting after submit is rejected.
func (s *Session) Select(index int, option string) error {
	if s.phase != PhaseAnswering {
		return ErrInvalidOperation
	}
	question, ok := s.Question(index)
	if !ok {
		return fmt.Errorf("%w: no question at index %d", ErrInvalidOperation, index)
	}
	if !contains(question.Options, option) {
		return fmt.Errorf("%w: option %q not offered", ErrInvalidOperation, option)
	}
	record := s.answers[index]
	if record.Submitted {
		return ErrInvalidOperation
	}
	record.Selected = option
	s.answers[index] = record
	return nil
}

// Submit freezes the answer for index, scores it, and applies the streak and
// trigger rules. A submission without a prior selection is rejected.
func (s *Session) Submit(index int) error {
	if s.phase != PhaseAnswering {
		return ErrInvalidOperation
	}
	question, ok := s.Question(index)
	if !ok {
		return fmt.Errorf("%w: no question at index %d", ErrInvalidOperation, index)
	}
	record := s.answers[index]
	if record.Submitted || record.Selected == "" {
		return ErrInvalidOperation
	}
	record.Submitted = true
	record.IsCorrect = record.Selected == question.Correct
	s.answers[index] = record
	s.emit(Event{Kind: EventAnswerSubmitted, Index: index, Record: record})

	if record.IsCorrect {
		s.score++
		s.correctCount++
		s.wrongStreak = 0
		s.checkTrigger()
		return nil
	}
	s.wrongStreak++
	if s.wrongStreak >= WrongStreakLimit {
		s.fail()
	}
	return nil
}

// checkTrigger starts a matching interlude when the correct count reaches the
// next unconsumed threshold. Thresholds never re-fire.
func (s *Session) checkTrigger() {
	if s.nextTrigger >= len(s.triggers) {
		return
	}
	if s.correctCount != s.triggers[s.nextTrigger] {
		return
	}
	source := s.pairSourceForInterlude(s.nextTrigger)
	s.nextTrigger++
	s.phase = PhaseMatching
	s.emit(Event{Kind: EventMatchingStarted, PairSourceID: source})
}

// pairSourceForInterlude reuses the last configured source when the list is
// shorter than the trigger list.
func (s *Session) pairSourceForInterlude(n int) string {
	if n < len(s.pairSources) {
		return s.pairSources[n]
	}
	return s.pairSources[len(s.pairSources)-1]
}

// PendingPairSource returns the pair source for the active interlude.
func (s *Session) PendingPairSource() (string, bool) {
	if s.phase != PhaseMatching {
		return "", false
	}
	return s.pairSourceForInterlude(s.nextTrigger - 1), true
}

// Advance moves the visible question without touching score or streak,
// clamped to the question range.
func (s *Session) Advance(dir Direction) error {
	if s.phase != PhaseAnswering {
		return ErrInvalidOperation
	}
	previous := s.current
	switch dir {
	case Prev:
		if s.current > 0 {
			s.current--
		}
	case Next:
		if s.current < len(s.questions)-1 {
			s.current++
		}
	default:
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidOperation, dir)
	}
	if s.current != previous {
		s.emit(Event{Kind: EventQuestionChanged, Index: s.current})
	}
	return nil
}

// ResolveMatching consumes the child session's outcome. Success resumes
// question flow and auto-advances; failure ends the whole session, bypassing
// the streak rule.
func (s *Session) ResolveMatching(outcome match.Outcome) error {
	if s.phase != PhaseMatching {
		return ErrInvalidOperation
	}
	s.emit(Event{Kind: EventMatchingResolved, Outcome: outcome})
	if outcome == match.OutcomeFail {
		s.fail()
		return nil
	}
	s.interludes++
	s.phase = PhaseAnswering
	if s.current < len(s.questions)-1 {
		s.current++
		s.emit(Event{Kind: EventQuestionChanged, Index: s.current})
	}
	return nil
}

// Finish completes the session. Valid only from the last question once it has
// been submitted; the result is frozen at this moment.
func (s *Session) Finish() (Result, error) {
	if s.phase != PhaseAnswering {
		return Result{}, ErrInvalidOperation
	}
	if s.current != len(s.questions)-1 {
		return Result{}, ErrInvalidOperation
	}
	if record, ok := s.answers[s.current]; !ok || !record.Submitted {
		return Result{}, ErrInvalidOperation
	}
	percent := int(math.Round(float64(s.score) / float64(len(s.questions)) * 100))
	s.result = Result{
		Score:     s.score,
		Total:     len(s.questions),
		Percent:   percent,
		Celebrate: percent >= CelebrateThreshold,
	}
	s.phase = PhaseCompleted
	s.emit(Event{Kind: EventSessionCompleted, Result: s.result})
	return s.result, nil
}

// Result returns the frozen result of a completed session.
func (s *Session) Result() (Result, bool) {
	if s.phase != PhaseCompleted {
		return Result{}, false
	}
	return s.result, true
}

func (s *Session) fail() {
	s.phase = PhaseFailed
	s.emit(Event{Kind: EventSessionFailed})
}

// emit stamps the session ID on an event before handing it to the sink.
func (s *Session) emit(event Event) {
	event.SessionID = s.id
	s.sink.emit(event)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
