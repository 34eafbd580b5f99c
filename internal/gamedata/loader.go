package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadFile reads an authored content file from disk. The format follows the
// extension: .yaml and .yml are YAML, anything else is JSON.
func LoadFile(path string) (Content, error) {
	var content Content

	raw, err := os.ReadFile(path)
	if err != nil {
		return content, fmt.Errorf("failed to read deck file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &content); err != nil {
			return content, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &content); err != nil {
			return content, fmt.Errorf("failed to parse JSON from %s: %w", path, err)
		}
	}

	return content, nil
}
