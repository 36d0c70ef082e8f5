package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfigFileName is the project file a host looks for in a
// project's root directory.
const ProjectConfigFileName = ".rbtypegraph.yml"

// HookConfig declares one project-specific attr_*-style macro: a call
// shaped like `bareName :sym1, :sym2` at class scope should be handled
// like the built-in attr_reader/attr_writer/attr_accessor of the given
// Kind.
type HookConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // "reader", "writer", or "accessor"
}

// ProjectConfig is the shape of a .rbtypegraph.yml file.
type ProjectConfig struct {
	Hooks []HookConfig `yaml:"hooks"`
}

// LoadProjectConfig reads and parses path. A missing file is not an
// error: it returns an empty ProjectConfig so built-in defaults apply.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
