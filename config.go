package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"qftsim/quantum"
)

// Config holds the driver settings. A yaml file provides the base values
// and command-line flags override them.
type Config struct {
	Qubits   int     `yaml:"qubits"`
	Seed     int64   `yaml:"seed"` // negative: seed from the clock
	Shots    int     `yaml:"shots"`
	Workers  int     `yaml:"workers"` // 0: GOMAXPROCS
	Epsilon  float64 `yaml:"epsilon"`
	Reverse  bool    `yaml:"reverse"`
	Pause    bool    `yaml:"pause"`
	LogLevel string  `yaml:"log_level"`
}

// DefaultConfig reproduces the original driver: three qubits, swap network
// on, pause before exit.
func DefaultConfig() Config {
	return Config{
		Qubits:   3,
		Seed:     -1,
		Shots:    1000,
		Epsilon:  quantum.DefaultEpsilon,
		Reverse:  true,
		Pause:    true,
		LogLevel: "warn",
	}
}

// LoadConfig reads a yaml file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Qubits < 1 || c.Qubits > quantum.MaxQubits {
		return fmt.Errorf("qubits must be in [1, %d], got %d", quantum.MaxQubits, c.Qubits)
	}
	if c.Shots < 1 {
		return fmt.Errorf("shots must be positive, got %d", c.Shots)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// SeedValue returns the configured seed, or one taken from the clock.
func (c Config) SeedValue() uint64 {
	if c.Seed < 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(c.Seed)
}
