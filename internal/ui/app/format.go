package app

import (
	"strings"

	"quizhub/internal/match"
)

// truncate shortens text for single-line display.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 || len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// deathMessageForStreak is the three-strikes failure text.
func deathMessageForStreak() string {
	return "You made three mistakes in a row. Your journey ends here... " +
		"But don't worry — you can always try again to reach the summit!"
}

// deathMessageForMatch is the matching failure text, varying by reason.
func deathMessageForMatch(reason match.Reason) string {
	if reason == match.ReasonTimeout {
		return "The clock ran out before you matched every pair. One matching miss ends the climb."
	}
	return "One wrong match is all it takes. The climb ends here — start over to try again."
}
