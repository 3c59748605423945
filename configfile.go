package authshell

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a config file. Durations are strings in
// time.ParseDuration syntax ("800ms", "1.5s"). Zero values fall back to the
// defaults so a file only needs the keys it overrides.
type fileConfig struct {
	Auth struct {
		SimulatedLatency  string `yaml:"simulated_latency"`
		MinPasswordLength int    `yaml:"min_password_length"`
	} `yaml:"auth"`
	Persist struct {
		StorageKey string `yaml:"storage_key"`
	} `yaml:"persist"`
	Audit struct {
		Enabled    bool `yaml:"enabled"`
		BufferSize int  `yaml:"buffer_size"`
		DropIfFull bool `yaml:"drop_if_full"`
	} `yaml:"audit"`
	Metrics struct {
		Enabled                 bool `yaml:"enabled"`
		EnableLatencyHistograms bool `yaml:"enable_latency_histograms"`
	} `yaml:"metrics"`
}

// LoadConfigFile reads a YAML config file and merges it over [DefaultConfig].
// The result is validated before it is returned.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg := DefaultConfig()

	if fc.Auth.SimulatedLatency != "" {
		d, err := time.ParseDuration(fc.Auth.SimulatedLatency)
		if err != nil {
			return Config{}, fmt.Errorf("config file %s: auth.simulated_latency: %w", path, err)
		}
		cfg.Auth.SimulatedLatency = d
	}
	if fc.Auth.MinPasswordLength > 0 {
		cfg.Auth.MinPasswordLength = fc.Auth.MinPasswordLength
	}
	if fc.Persist.StorageKey != "" {
		cfg.Persist.StorageKey = fc.Persist.StorageKey
	}

	cfg.Audit.Enabled = fc.Audit.Enabled
	if fc.Audit.BufferSize > 0 {
		cfg.Audit.BufferSize = fc.Audit.BufferSize
	}
	if fc.Audit.Enabled {
		cfg.Audit.DropIfFull = fc.Audit.DropIfFull
	}

	cfg.Metrics.Enabled = fc.Metrics.Enabled
	cfg.Metrics.EnableLatencyHistograms = fc.Metrics.EnableLatencyHistograms

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}
