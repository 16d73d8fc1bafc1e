package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizhub/internal/quiz"
)

// resultsTable builds the answers review table for the results screen.
func resultsTable(session *quiz.Session, noColor bool) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: 44},
		{Title: "Your answer", Width: 24},
		{Title: "Correct answer", Width: 24},
		{Title: "Result", Width: 9},
	}
	rows := make([]table.Row, 0, session.Total())
	for i := 0; i < session.Total(); i++ {
		question, _ := session.Question(i)
		record, _ := session.Answer(i)
		result := "—"
		selected := ""
		if record.Submitted {
			selected = record.Selected
			if record.IsCorrect {
				result = "correct"
			} else {
				result = "wrong"
			}
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			truncate(question.Prompt, 44),
			truncate(selected, 24),
			truncate(question.Correct, 24),
			result,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(reviewTableStyles(noColor))
	return t
}

// reviewTableStyles returns table styles for the review table.
func reviewTableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}
