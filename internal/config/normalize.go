package config

import (
	"strings"

	"quizhub/internal/sheet"
	"quizhub/internal/spec"
)

// Normalize trims identifiers, applies the default question limit, and pads a
// short matching sheet list by reusing its last entry so every trigger point
// has a pair source.
func Normalize(registry *spec.Registry) {
	for i := range registry.Modules {
		module := &registry.Modules[i]
		module.ID = strings.TrimSpace(module.ID)
		module.Name = strings.TrimSpace(module.Name)
		module.SheetID = strings.TrimSpace(module.SheetID)
		for j := range module.MatchingSheetIDs {
			module.MatchingSheetIDs[j] = strings.TrimSpace(module.MatchingSheetIDs[j])
		}
		if module.QuestionLimit <= 0 {
			module.QuestionLimit = sheet.DefaultQuestionLimit
		}
		if len(module.MatchingSheetIDs) > 0 {
			last := module.MatchingSheetIDs[len(module.MatchingSheetIDs)-1]
			for len(module.MatchingSheetIDs) < len(module.MatchingTriggerPoints) {
				module.MatchingSheetIDs = append(module.MatchingSheetIDs, last)
			}
		}
	}
}
