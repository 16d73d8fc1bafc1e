package spec

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseRegistry decodes a modules.yml document, rejecting unknown fields and
// multi-document files.
func ParseRegistry(data []byte) (Registry, error) {
	var registry Registry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&registry); err != nil {
		return Registry{}, fmt.Errorf("parse modules file: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Registry{}, fmt.Errorf("parse modules file: multiple YAML documents are not supported")
		}
		return Registry{}, fmt.Errorf("parse modules file: %w", err)
	}
	return registry, nil
}
