package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizhub/internal/quiz"
)

// View renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case screenHome:
		return m.viewHome()
	case screenLoading:
		return m.frame("Loading questions...")
	case screenQuestion:
		return m.viewQuestion()
	case screenMatchLoading:
		return m.frame("Loading matching pairs...")
	case screenMatching:
		return m.viewMatching()
	case screenDeath:
		return m.viewDeath()
	case screenResults:
		return m.viewResults()
	case screenError:
		return m.viewError()
	}
	return ""
}

// frame wraps body text with the title header and footer line.
func (m Model) frame(body string) string {
	title := "Quiz Hub"
	if m.session != nil {
		title = m.session.Title()
	} else if m.activeModule.Name != "" && m.screen != screenHome {
		title = m.activeModule.Name
	}
	header := stylizeBold(title, m.noColor, colorTitle)
	footer := ""
	if last := m.log.Last(); last != "" {
		footer = stylize("Last event: "+last, m.noColor, colorFaint)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// viewHome lists the configured modules.
func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString("Select a module:\n\n")
	if len(m.modules) == 0 {
		b.WriteString("  (no modules configured)\n")
	}
	for i, module := range m.modules {
		marker := "  "
		line := module.Name
		if i == m.cursor {
			marker = "> "
			line = stylizeBold(line, m.noColor, colorSelected)
		}
		fmt.Fprintf(&b, "%s%s\n", marker, line)
	}
	b.WriteString("\n")
	b.WriteString(stylize("up/down: choose   enter: play   q: quit", m.noColor, colorMuted))
	return m.frame(b.String())
}

// viewQuestion renders the current question with its options and, once
// submitted, the explanation box.
func (m Model) viewQuestion() string {
	session := m.session
	index := session.CurrentIndex()
	question, _ := session.Question(index)
	record, _ := session.Answer(index)

	var b strings.Builder
	b.WriteString(question.Prompt + "\n\n")
	for i, option := range question.Options {
		style := optionStyle(m.noColor,
			option == record.Selected,
			record.Submitted,
			option == question.Correct,
			option == record.Selected)
		fmt.Fprintf(&b, "  %d. %s\n", i+1, style(option))
	}
	b.WriteString("\n")
	if record.Submitted {
		if record.IsCorrect {
			b.WriteString(stylize("Correct!", m.noColor, colorCorrect) + "\n")
		} else {
			b.WriteString(stylize("Incorrect.", m.noColor, colorWrong) + "\n")
			fmt.Fprintf(&b, "Correct answer: %s\n", question.Correct)
		}
		if question.Explanation != "" {
			fmt.Fprintf(&b, "Explanation: %s\n", question.Explanation)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Question %d / %d   Score: %d\n", index+1, session.Total(), session.Score())
	b.WriteString(stylize(m.questionHelp(index, record), m.noColor, colorMuted))
	return m.frame(b.String())
}

// questionHelp picks the help line for the question state.
func (m Model) questionHelp(index int, record quiz.AnswerRecord) string {
	if !record.Submitted {
		return "1-4/up/down: select   enter: submit   left: prev   q: home"
	}
	if index == m.session.Total()-1 {
		return "enter: finish quiz   left: prev   q: home"
	}
	return "enter/right: next   left: prev   q: home"
}

// viewMatching renders the two columns and the countdown.
func (m Model) viewMatching() string {
	matching := m.matching
	leftTitle, rightTitle := matching.Titles()

	timer := fmt.Sprintf("%ds", matching.Remaining())
	if matching.Warning() {
		timer = stylizeBold(timer+" !", m.noColor, colorWarn)
	} else {
		timer = stylize(timer, m.noColor, colorMuted)
	}

	left := m.renderColumn(leftTitle, matching.LeftItems(), sideLeft)
	right := m.renderColumn(rightTitle, matching.RightItems(), sideRight)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	var b strings.Builder
	fmt.Fprintf(&b, "Match each %s with its correct %s. One mistake ends the run.\n\n", leftTitle, rightTitle)
	fmt.Fprintf(&b, "Time left: %s\n\n", timer)
	b.WriteString(columns)
	b.WriteString("\n\n")
	help := "up/down: move   enter: pick left, then right   tab: switch column   esc: clear pick"
	b.WriteString(stylize(help, m.noColor, colorMuted))
	return m.frame(b.String())
}

// renderColumn renders one matching column with cursor and matched markers.
func (m Model) renderColumn(title string, items []string, column side) string {
	var b strings.Builder
	b.WriteString(stylizeBold(title, m.noColor, colorTitle) + "\n")
	for i, item := range items {
		marker := "  "
		if m.matchSide == column && m.matchCursor == i {
			marker = "> "
		}
		line := truncate(item, 40)
		switch {
		case m.matching.Matched(item):
			line = stylize(line+" ✓", m.noColor, colorFaint)
		case m.pickedLeft == item && column == sideLeft:
			line = stylizeBold(line, m.noColor, colorSelected)
		}
		fmt.Fprintf(&b, "%s%s\n", marker, line)
	}
	return b.String()
}

// viewDeath renders the failure screen.
func (m Model) viewDeath() string {
	var b strings.Builder
	b.WriteString(stylizeBold("You Died 💀", m.noColor, colorWrong) + "\n\n")
	message := m.deathMessage
	if message == "" {
		message = deathMessageForStreak()
	}
	b.WriteString(message + "\n\n")
	b.WriteString(stylize("enter: home   q: quit", m.noColor, colorMuted))
	return m.frame(b.String())
}

// viewResults renders the completion screen with the answers review table.
func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(stylizeBold("Quiz Complete 🎉", m.noColor, colorTitle) + "\n\n")
	fmt.Fprintf(&b, "Your score: %d / %d (%d%%)\n", m.result.Score, m.result.Total, m.result.Percent)
	if m.result.Celebrate {
		b.WriteString(stylizeBold("Summit reached! Outstanding climb!", m.noColor, colorCelebrate) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(resultsTable(m.session, m.noColor).View())
	b.WriteString("\n\n")
	b.WriteString(stylize("Session "+m.session.ID(), m.noColor, colorFaint) + "\n")
	b.WriteString(stylize("enter: home   q: quit", m.noColor, colorMuted))
	return m.frame(b.String())
}

// viewError renders a fatal load error. Loads are never retried; the only
// path forward is a fresh session.
func (m Model) viewError() string {
	var b strings.Builder
	b.WriteString(stylizeBold("Could not load this module", m.noColor, colorWrong) + "\n\n")
	if m.loadErr != nil {
		b.WriteString(m.loadErr.Error() + "\n\n")
	}
	b.WriteString(stylize("enter: home   q: quit", m.noColor, colorMuted))
	return m.frame(b.String())
}
