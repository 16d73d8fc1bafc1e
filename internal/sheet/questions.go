package sheet

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"quizhub/internal/quiz"
	"quizhub/internal/shuffle"
)

// DefaultQuestionLimit caps a session's question count.
const DefaultQuestionLimit = 20

// Loader turns fetched rows into session-ready data. Rand drives the one-time
// shuffles applied at load; nil falls back to a clock-seeded source.
type Loader struct {
	Client *Client
	Rand   *rand.Rand
}

// Questions fetches, maps, and shuffles the question set for a sheet. Options
// are shuffled once per question here, never re-shuffled per view, and the
// shuffled row order is capped at limit.
func (l *Loader) Questions(ctx context.Context, sheetID string, limit int) ([]quiz.Question, error) {
	rows, err := l.Client.FetchTable(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	questions, err := ParseQuestionRows(rows, l.Rand)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheetID, err)
	}
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	return shuffle.Take(l.Rand, questions, limit), nil
}

// ParseQuestionRows maps rows positionally to questions:
// (prompt, optA, optB, optC, optD, correct, explanation). Blank rows are
// skipped; a malformed row is a load error.
func ParseQuestionRows(rows [][]string, r *rand.Rand) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		if len(row) < 6 {
			return nil, fmt.Errorf("row %d: expected at least 6 cells, got %d", i, len(row))
		}
		prompt := strings.TrimSpace(row[0])
		if prompt == "" {
			return nil, fmt.Errorf("row %d: empty prompt", i)
		}
		options := make([]string, 0, 4)
		for col := 1; col <= 4; col++ {
			option := strings.TrimSpace(row[col])
			if option == "" {
				return nil, fmt.Errorf("row %d: empty option in column %d", i, col)
			}
			options = append(options, option)
		}
		correct := strings.TrimSpace(row[5])
		if !optionPresent(options, correct) {
			return nil, fmt.Errorf("row %d: correct option %q not among the options", i, correct)
		}
		explanation := ""
		if len(row) > 6 {
			explanation = strings.TrimSpace(row[6])
		}
		questions = append(questions, quiz.Question{
			Prompt:      prompt,
			Options:     shuffle.Slice(r, options),
			Correct:     correct,
			Explanation: explanation,
		})
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no question rows found")
	}
	return questions, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func optionPresent(options []string, want string) bool {
	for _, option := range options {
		if option == want {
			return true
		}
	}
	return false
}
