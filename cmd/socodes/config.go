package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the enumerate command, shared by flags and DefaultConfig.
const (
	// DefaultN is the maximum code length.
	DefaultN = 7
	// DefaultK is the maximum code dimension.
	DefaultK = 3
	// DefaultB is the weight divisor; 2 selects all self-orthogonal codes.
	DefaultB = 2
	// DefaultFormat is the output format of enumerate, runs and show.
	DefaultFormat = "text"
	// DefaultWorkers walks the seed subtrees sequentially.
	DefaultWorkers = 1
)

// Config holds the enumerate command settings; a YAML file may set any field.
type Config struct {
	N       int    `yaml:"n"`
	K       int    `yaml:"k"`
	B       int    `yaml:"b"`
	Equal   bool   `yaml:"equal"`
	Format  string `yaml:"format"`
	Workers int    `yaml:"workers"`
	Store   string `yaml:"store"`
}

// DefaultConfig returns the settings used when neither file nor flags say otherwise.
func DefaultConfig() *Config {
	return &Config{
		N:       DefaultN,
		K:       DefaultK,
		B:       DefaultB,
		Format:  DefaultFormat,
		Workers: DefaultWorkers,
	}
}

// Load reads path over DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// validFormat reports whether f names a renderer.
func validFormat(f string) bool {
	switch f {
	case "text", "json", "yaml":
		return true
	}

	return false
}
