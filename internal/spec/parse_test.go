package spec

import (
	"strings"
	"testing"
)

const sampleRegistry = `version: 1
modules:
  - id: ibd1
    name: "Intro to IBD"
    sheet_id: "sheet-questions"
    matching_sheet_ids:
      - "sheet-pairs-1"
      - "sheet-pairs-2"
    matching_trigger_points: [3, 7]
    question_limit: 20
`

// TestParseRegistry verifies the schema decodes field for field.
func TestParseRegistry(t *testing.T) {
	registry, err := ParseRegistry([]byte(sampleRegistry))
	if err != nil {
		t.Fatalf("parse registry: %v", err)
	}
	if registry.Version != 1 || len(registry.Modules) != 1 {
		t.Fatalf("unexpected registry: %+v", registry)
	}
	module := registry.Modules[0]
	if module.ID != "ibd1" || module.SheetID != "sheet-questions" {
		t.Fatalf("unexpected module: %+v", module)
	}
	if len(module.MatchingTriggerPoints) != 2 || module.MatchingTriggerPoints[1] != 7 {
		t.Fatalf("unexpected trigger points: %v", module.MatchingTriggerPoints)
	}
}

// TestParseRegistryRejectsUnknownFields verifies strict decoding.
func TestParseRegistryRejectsUnknownFields(t *testing.T) {
	if _, err := ParseRegistry([]byte("version: 1\nbogus: true\n")); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

// TestParseRegistryRejectsMultiDoc verifies multi-document files are rejected.
func TestParseRegistryRejectsMultiDoc(t *testing.T) {
	doc := sampleRegistry + "---\nversion: 1\n"
	if _, err := ParseRegistry([]byte(doc)); err == nil || !strings.Contains(err.Error(), "multiple") {
		t.Fatalf("expected multi-document error, got %v", err)
	}
}
