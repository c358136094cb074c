// Package config loads the run configuration from a YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Input is the path to the incident CSV.
	Input string `yaml:"input"`
	// OutputDir receives the rendered plots.
	OutputDir string `yaml:"output_dir"`
	// DateLayout overrides the expected OCCUR_DATE layout (Go reference
	// time form). Empty means the default month/day/year layout.
	DateLayout string `yaml:"date_layout"`
	// Plots toggles HTML plot output.
	Plots bool `yaml:"plots"`
}

func Default() *Config {
	return &Config{
		OutputDir: "out",
		Plots:     true,
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
