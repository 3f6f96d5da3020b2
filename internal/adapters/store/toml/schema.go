package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int                     `toml:"version"`
	Records map[string]recordSchema `toml:"records,omitempty"`
}

type recordSchema struct {
	Value     string `toml:"value"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Records == nil {
		s.Records = map[string]recordSchema{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported store schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
