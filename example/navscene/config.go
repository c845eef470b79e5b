package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the demo scene: a flat triangulated ground grid, the
// query sphere, and how many destinations to draw.
type Config struct {
	Ground  GroundConfig  `yaml:"ground"`
	Query   QueryConfig   `yaml:"query"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
}

// GroundConfig holds the dimensions of the generated ground mesh.
type GroundConfig struct {
	Width   int     `yaml:"width"`   // quads along X
	Depth   int     `yaml:"depth"`   // quads along Z
	Spacing float64 `yaml:"spacing"` // quad edge length
}

// QueryConfig holds the sphere the destinations are constrained to.
type QueryConfig struct {
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

// RunConfig holds sampling parameters.
type RunConfig struct {
	Samples int   `yaml:"samples"`
	Seed    int64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Ground: GroundConfig{
			Width:   16,
			Depth:   16,
			Spacing: 1.0,
		},
		Query: QueryConfig{
			Center: [3]float64{8, 0, 8},
			Radius: 3.0,
		},
		Run: RunConfig{
			Samples: 1000,
			Seed:    1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Load merges an optional YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	return cfg, nil
}
