package app

import "github.com/charmbracelet/lipgloss"

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

var (
	colorTitle     = lipgloss.Color("33")
	colorMuted     = lipgloss.Color("242")
	colorFaint     = lipgloss.Color("240")
	colorCorrect   = lipgloss.Color("42")
	colorWrong     = lipgloss.Color("196")
	colorSelected  = lipgloss.Color("220")
	colorWarn      = lipgloss.Color("196")
	colorCelebrate = lipgloss.Color("213")
)

// optionStyle picks the option line color from its submission state.
func optionStyle(noColor bool, selected, submitted, isCorrect, wasPicked bool) func(string) string {
	return func(text string) string {
		if noColor {
			return text
		}
		switch {
		case submitted && isCorrect:
			return stylize(text, false, colorCorrect)
		case submitted && wasPicked:
			return stylize(text, false, colorWrong)
		case selected:
			return stylizeBold(text, false, colorSelected)
		default:
			return text
		}
	}
}
