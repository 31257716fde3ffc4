package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourcesFile is the optional YAML file that selects which origins feed
// each sport and adds origin-specific status aliases on top of the
// built-in vocabulary table.
type SourcesFile struct {
	// Sports maps a sport name to the origins enabled for it.
	Sports map[string][]string `yaml:"sports"`
	// StatusAliases maps sport -> raw token -> canonical status.
	StatusAliases map[string]map[string]string `yaml:"status_aliases"`
}

// DefaultSources mirrors the origins the monitor ships with.
func DefaultSources() SourcesFile {
	return SourcesFile{
		Sports: map[string][]string{
			"nba":    {"fixture"},
			"mlb":    {"fixture", "mlb-transactions"},
			"soccer": {"fixture"},
		},
	}
}

// LoadSources reads the sources file at path. An empty path or a missing
// file yields the defaults; a malformed file is an error so a typo does
// not silently disable origins.
func LoadSources(path string) (SourcesFile, error) {
	if path == "" {
		return DefaultSources(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSources(), nil
		}
		return SourcesFile{}, fmt.Errorf("read sources config: %w", err)
	}

	var parsed SourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return SourcesFile{}, fmt.Errorf("parse sources config: %w", err)
	}
	if len(parsed.Sports) == 0 {
		parsed.Sports = DefaultSources().Sports
	}
	return parsed, nil
}
