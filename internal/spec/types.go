// Package spec defines the modules.yml registry schema.
package spec

// Registry is the top-level modules.yml document.
type Registry struct {
	Version int      `yaml:"version"`
	Modules []Module `yaml:"modules"`
}

// Module configures one playable quiz module.
type Module struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	SheetID string `yaml:"sheet_id"`
	// MatchingSheetIDs name the pair sheets for the matching interludes. When
	// shorter than MatchingTriggerPoints the last entry is reused.
	MatchingSheetIDs []string `yaml:"matching_sheet_ids"`
	// MatchingTriggerPoints are correct-answer counts that start interludes.
	MatchingTriggerPoints []int `yaml:"matching_trigger_points"`
	// QuestionLimit caps the session length; 20 when zero.
	QuestionLimit int `yaml:"question_limit"`
}
