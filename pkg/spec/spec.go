package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a machine spec from a YAML file.
func Load(path string) (*MachineSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec MachineSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a machine spec from a project directory.
// It looks for machine.yaml in the given directory.
func LoadProject(projectDir string) (*MachineSpec, error) {
	specPath := filepath.Join(projectDir, "machine.yaml")
	return Load(specPath)
}
