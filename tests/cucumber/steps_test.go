package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"quizhub/internal/cli"
	"quizhub/internal/match"
	"quizhub/internal/quiz"
)

// featureState holds scenario state for cucumber tests of the quiz flows and
// the CLI.
type featureState struct {
	session  *quiz.Session
	matching *match.Session
	result   quiz.Result
	finished bool

	configDir  string
	configPath string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a quiz of (\d+) questions$`, state.aQuizOfQuestions)
	ctx.Step(`^a quiz of (\d+) questions with matching after (\d+) correct answers$`, state.aQuizWithMatching)
	ctx.Step(`^I answer (\d+) questions? correctly$`, state.iAnswerCorrectly)
	ctx.Step(`^I answer (\d+) questions? incorrectly in a row$`, state.iAnswerIncorrectly)
	ctx.Step(`^I answer the sequence "([cw]+)"$`, state.iAnswerSequence)
	ctx.Step(`^I finish the quiz$`, state.iFinishTheQuiz)
	ctx.Step(`^the run has failed$`, state.theRunHasFailed)
	ctx.Step(`^the run is still going$`, state.theRunIsStillGoing)
	ctx.Step(`^a matching interlude begins$`, state.aMatchingInterludeBegins)
	ctx.Step(`^the matching pairs are:$`, state.theMatchingPairsAre)
	ctx.Step(`^I match "([^"]+)" with "([^"]+)"$`, state.iMatch)
	ctx.Step(`^the countdown expires$`, state.theCountdownExpires)
	ctx.Step(`^the quiz resumes on the next question$`, state.theQuizResumes)
	ctx.Step(`^the score is (\d+) of (\d+)$`, state.theScoreIs)
	ctx.Step(`^the percent is (\d+)$`, state.thePercentIs)
	ctx.Step(`^the result celebrates$`, state.theResultCelebrates)
	ctx.Step(`^the result does not celebrate$`, state.theResultDoesNotCelebrate)

	ctx.Step(`^an invalid modules file$`, state.anInvalidModulesFile)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message lists the invalid fields$`, state.theErrorListsInvalidFields)
}

func (s *featureState) reset() {
	s.session = nil
	s.matching = nil
	s.result = quiz.Result{}
	s.finished = false
	s.configDir = ""
	s.configPath = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

func (s *featureState) cleanup() {
	if s.configDir != "" {
		_ = os.RemoveAll(s.configDir)
	}
}

func featureQuestions(n int) []quiz.Question {
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			Prompt:  fmt.Sprintf("Question %d", i+1),
			Options: []string{"right", "wrong-a", "wrong-b", "wrong-c"},
			Correct: "right",
		}
	}
	return questions
}

func (s *featureState) aQuizOfQuestions(count int) error {
	session, err := quiz.NewSession(quiz.Config{
		Title:     "Feature quiz",
		Questions: featureQuestions(count),
	})
	if err != nil {
		return err
	}
	s.session = session
	return nil
}

func (s *featureState) aQuizWithMatching(count, trigger int) error {
	session, err := quiz.NewSession(quiz.Config{
		Title:         "Feature quiz",
		Questions:     featureQuestions(count),
		TriggerPoints: []int{trigger},
		PairSourceIDs: []string{"pairs-1"},
	})
	if err != nil {
		return err
	}
	s.session = session
	return nil
}

// answer submits one answer at the current question and advances when the
// session stays in the answering phase.
func (s *featureState) answer(correct bool) error {
	if s.session == nil {
		return fmt.Errorf("no quiz session")
	}
	if s.session.Phase() != quiz.PhaseAnswering {
		return fmt.Errorf("quiz is not accepting answers (phase %d)", s.session.Phase())
	}
	index := s.session.CurrentIndex()
	question, ok := s.session.Question(index)
	if !ok {
		return fmt.Errorf("no question at index %d", index)
	}
	option := question.Correct
	if !correct {
		for _, candidate := range question.Options {
			if candidate != question.Correct {
				option = candidate
				break
			}
		}
	}
	if err := s.session.Select(index, option); err != nil {
		return err
	}
	if err := s.session.Submit(index); err != nil {
		return err
	}
	if s.session.Phase() == quiz.PhaseAnswering && index < s.session.Total()-1 {
		return s.session.Advance(quiz.Next)
	}
	return nil
}

func (s *featureState) iAnswerCorrectly(count int) error {
	for i := 0; i < count; i++ {
		if err := s.answer(true); err != nil {
			return err
		}
	}
	return nil
}

func (s *featureState) iAnswerIncorrectly(count int) error {
	for i := 0; i < count; i++ {
		if err := s.answer(false); err != nil {
			return err
		}
	}
	return nil
}

func (s *featureState) iAnswerSequence(sequence string) error {
	for _, letter := range sequence {
		if err := s.answer(letter == 'c'); err != nil {
			return err
		}
	}
	return nil
}

func (s *featureState) iFinishTheQuiz() error {
	if s.session == nil {
		return fmt.Errorf("no quiz session")
	}
	result, err := s.session.Finish()
	if err != nil {
		return err
	}
	s.result = result
	s.finished = true
	return nil
}

func (s *featureState) theRunHasFailed() error {
	if s.session == nil {
		return fmt.Errorf("no quiz session")
	}
	if s.session.Phase() != quiz.PhaseFailed {
		return fmt.Errorf("expected the run failed, phase is %d", s.session.Phase())
	}
	return nil
}

func (s *featureState) theRunIsStillGoing() error {
	if s.session == nil {
		return fmt.Errorf("no quiz session")
	}
	if s.session.Phase() != quiz.PhaseAnswering {
		return fmt.Errorf("expected the run active, phase is %d", s.session.Phase())
	}
	return nil
}

func (s *featureState) aMatchingInterludeBegins() error {
	if s.session == nil {
		return fmt.Errorf("no quiz session")
	}
	if s.session.Phase() != quiz.PhaseMatching {
		return fmt.Errorf("expected a matching interlude, phase is %d", s.session.Phase())
	}
	return nil
}

func (s *featureState) theMatchingPairsAre(table *godog.Table) error {
	pairs := make([]match.Pair, 0, len(table.Rows))
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("pair rows need two cells, got %d", len(row.Cells))
		}
		pairs = append(pairs, match.Pair{
			Left:  strings.TrimSpace(row.Cells[0].Value),
			Right: strings.TrimSpace(row.Cells[1].Value),
		})
	}
	matching, err := match.NewSession(match.Config{Pairs: pairs})
	if err != nil {
		return err
	}
	s.matching = matching
	return nil
}

func (s *featureState) iMatch(left, right string) error {
	if s.matching == nil {
		return fmt.Errorf("no matching session")
	}
	if err := s.matching.AttemptMatch(left, right); err != nil {
		return err
	}
	return s.resolveIfDone()
}

func (s *featureState) theCountdownExpires() error {
	if s.matching == nil {
		return fmt.Errorf("no matching session")
	}
	for s.matching.Phase() == match.PhaseActive {
		s.matching.Tick()
	}
	return s.resolveIfDone()
}

// resolveIfDone reports a terminal matching outcome back to the quiz session.
func (s *featureState) resolveIfDone() error {
	if s.matching == nil || s.matching.Phase() == match.PhaseActive {
		return nil
	}
	outcome, done := s.matching.Outcome()
	if !done {
		return nil
	}
	s.matching = nil
	if s.session == nil {
		return nil
	}
	return s.session.ResolveMatching(outcome)
}

func (s *featureState) theQuizResumes() error {
	if s.session == nil {
		return fmt.Errorf("no quiz session")
	}
	if s.session.Phase() != quiz.PhaseAnswering {
		return fmt.Errorf("expected answering phase, got %d", s.session.Phase())
	}
	record, _ := s.session.Answer(s.session.CurrentIndex())
	if record.Submitted {
		return fmt.Errorf("expected an unanswered question after the interlude")
	}
	return nil
}

func (s *featureState) theScoreIs(score, total int) error {
	if !s.finished {
		return fmt.Errorf("quiz is not finished")
	}
	if s.result.Score != score || s.result.Total != total {
		return fmt.Errorf("expected %d of %d, got %d of %d", score, total, s.result.Score, s.result.Total)
	}
	return nil
}

func (s *featureState) thePercentIs(percent int) error {
	if !s.finished {
		return fmt.Errorf("quiz is not finished")
	}
	if s.result.Percent != percent {
		return fmt.Errorf("expected %d%%, got %d%%", percent, s.result.Percent)
	}
	return nil
}

func (s *featureState) theResultCelebrates() error {
	if !s.result.Celebrate {
		return fmt.Errorf("expected a celebration")
	}
	return nil
}

func (s *featureState) theResultDoesNotCelebrate() error {
	if s.result.Celebrate {
		return fmt.Errorf("expected no celebration")
	}
	return nil
}

func (s *featureState) anInvalidModulesFile() error {
	dir, err := os.MkdirTemp("", "quizhub-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.configDir = dir
	s.configPath = filepath.Join(dir, "modules.yml")
	contents := `version: 1
modules:
  - id: broken
    name: ""
    sheet_id: ""
    matching_trigger_points: [3]
`
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write modules file: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizhub" {
		args = args[1:]
	}
	for i, arg := range args {
		if arg == "<modules>" {
			args[i] = s.configPath
		}
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorListsInvalidFields() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "name") || !strings.Contains(errOutput, "sheet_id") {
		return fmt.Errorf("expected error to mention the missing fields, got %q", errOutput)
	}
	return nil
}
