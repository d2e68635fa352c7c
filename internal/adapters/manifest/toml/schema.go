package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version        int             `toml:"version"`
	MinimumRuntime string          `toml:"minimum_runtime"`
	Packages       []packageSchema `toml:"packages"`
	Verify         verifySchema    `toml:"verify"`
	Extension      extensionSchema `toml:"extension"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported manifest schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type packageSchema struct {
	Name           string `toml:"name"`
	MinimumVersion string `toml:"minimum_version"`
}

type verifySchema struct {
	Modules []string `toml:"modules"`
}

type extensionSchema struct {
	Package        string   `toml:"package"`
	ActivateModule string   `toml:"activate_module"`
	ActivateArgs   []string `toml:"activate_args"`
}
