package config

import (
	"fmt"
	"strings"

	"quizhub/internal/spec"
)

// Issue captures a validation problem with a registry field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates registry validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "modules file validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a registry for correctness.
func Validate(registry *spec.Registry) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if registry.Version == 0 {
		add("version", "is required")
	} else if registry.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", registry.Version))
	}
	if len(registry.Modules) == 0 {
		add("modules", "must include at least one entry")
	}

	seen := map[string]struct{}{}
	for i, module := range registry.Modules {
		prefix := fmt.Sprintf("modules[%d]", i)
		if module.ID == "" {
			add(prefix+".id", "is required")
		} else if _, dup := seen[module.ID]; dup {
			add(prefix+".id", fmt.Sprintf("duplicate id %q", module.ID))
		} else {
			seen[module.ID] = struct{}{}
		}
		if module.Name == "" {
			add(prefix+".name", "is required")
		}
		if module.SheetID == "" {
			add(prefix+".sheet_id", "is required")
		}
		for j, point := range module.MatchingTriggerPoints {
			field := fmt.Sprintf("%s.matching_trigger_points[%d]", prefix, j)
			if point <= 0 {
				add(field, "must be positive")
			}
			if j > 0 && point <= module.MatchingTriggerPoints[j-1] {
				add(field, "must be strictly increasing")
			}
		}
		if len(module.MatchingTriggerPoints) > 0 && len(module.MatchingSheetIDs) == 0 {
			add(prefix+".matching_sheet_ids", "required when trigger points are set")
		}
		for j, id := range module.MatchingSheetIDs {
			if id == "" {
				add(fmt.Sprintf("%s.matching_sheet_ids[%d]", prefix, j), "is required")
			}
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
