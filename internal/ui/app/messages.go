package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizhub/internal/quiz"
	"quizhub/internal/sheet"
	"quizhub/internal/spec"
)

// questionsLoadedMsg delivers the fetched question set.
type questionsLoadedMsg struct {
	questions []quiz.Question
}

// pairsLoadedMsg delivers the fetched pair set for an interlude.
type pairsLoadedMsg struct {
	set sheet.PairSet
}

// loadFailedMsg reports a fatal, non-retried load error.
type loadFailedMsg struct {
	err error
}

// matchTickMsg carries one countdown step.
type matchTickMsg time.Time

const loadTimeout = 30 * time.Second

// loadQuestionsCmd fetches the question sheet off the update loop.
func loadQuestionsCmd(loader *sheet.Loader, module spec.Module) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		questions, err := loader.Questions(ctx, module.SheetID, module.QuestionLimit)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return questionsLoadedMsg{questions: questions}
	}
}

// loadPairsCmd fetches a pair sheet off the update loop.
func loadPairsCmd(loader *sheet.Loader, sheetID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		set, err := loader.Pairs(ctx, sheetID)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return pairsLoadedMsg{set: set}
	}
}

// tickCmd schedules the next countdown step.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return matchTickMsg(t) })
}
