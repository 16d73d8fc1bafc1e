package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultRegistry = `version: 1
modules:
  - id: ibd1
    name: "Intro to IBD"
    sheet_id: "<question sheet id>"
    matching_sheet_ids:
      - "<pair sheet id for the first interlude>"
      - "<pair sheet id for the second interlude>"
    matching_trigger_points: [3, 7]
    question_limit: 20
`

// Scaffold writes a starter modules.yml into dir. Refuses to overwrite.
func Scaffold(dir string) (string, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(defaultRegistry), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
