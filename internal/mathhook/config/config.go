// Package config provides configuration management for the MathHook CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mathhook/mathhook/pkg/mathhook"
)

// Config represents the application configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig tunes the GCD engine.
type EngineConfig struct {
	StabilityThreshold int     `yaml:"stability_threshold"`
	MaxPrimes          int     `yaml:"max_primes"`
	MaxEvalPoints      int     `yaml:"max_eval_points"`
	SparseThreshold    float64 `yaml:"sparse_threshold"`
	UseSparse          bool    `yaml:"use_sparse"`
	StartingPrimeIndex int     `yaml:"starting_prime_index"`
	MaxVariables       int     `yaml:"max_variables"`
	Workers            int     `yaml:"workers"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	opts := mathhook.DefaultOptions()
	return &Config{
		Engine: EngineConfig{
			StabilityThreshold: opts.StabilityThreshold,
			MaxPrimes:          opts.MaxPrimes,
			MaxEvalPoints:      opts.MaxEvalPoints,
			SparseThreshold:    opts.SparseThreshold,
			UseSparse:          opts.UseSparse,
			StartingPrimeIndex: opts.StartingPrimeIndex,
			MaxVariables:       opts.MaxVariables,
			Workers:            opts.Workers,
		},
		Logging: LoggingConfig{
			Level: "error",
		},
	}
}

// Load reads a configuration file, layering it over the defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options converts the engine section to engine options.
func (c *Config) Options() *mathhook.Options {
	return &mathhook.Options{
		StabilityThreshold: c.Engine.StabilityThreshold,
		MaxPrimes:          c.Engine.MaxPrimes,
		MaxEvalPoints:      c.Engine.MaxEvalPoints,
		SparseThreshold:    c.Engine.SparseThreshold,
		UseSparse:          c.Engine.UseSparse,
		StartingPrimeIndex: c.Engine.StartingPrimeIndex,
		MaxVariables:       c.Engine.MaxVariables,
		Workers:            c.Engine.Workers,
	}
}
