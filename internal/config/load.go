// Package config loads, normalizes, and validates the modules.yml registry.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizhub/internal/spec"
)

// DefaultFileName is the registry file looked up from the working directory.
const DefaultFileName = "modules.yml"

// Load reads, parses, normalizes, and validates a registry file.
func Load(path string) (spec.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Registry{}, fmt.Errorf("read modules file: %w", err)
	}
	registry, err := spec.ParseRegistry(data)
	if err != nil {
		return spec.Registry{}, err
	}
	Normalize(&registry)
	if err := Validate(&registry); err != nil {
		return spec.Registry{}, err
	}
	return registry, nil
}

// FindPath resolves an explicit path or falls back to DefaultFileName in the
// working directory.
func FindPath(path string) (string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve modules path: %w", err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve modules path: %w", err)
	}
	candidate := filepath.Join(wd, DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("no %s found in %s (run \"quizhub init\" to create one)", DefaultFileName, wd)
	}
	return candidate, nil
}
