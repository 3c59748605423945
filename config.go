package authshell

import (
	"errors"
	"time"
)

// Config defines the tunable behavior of a [Store].
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	Auth    AuthConfig
	Persist PersistConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
AUTH CONFIG
====================================
*/

// AuthConfig controls the authentication operations themselves.
type AuthConfig struct {
	// SimulatedLatency is the artificial delay applied by the default
	// passthrough authenticator before resolving. The reference design uses
	// 800ms; callers must not assume zero latency.
	SimulatedLatency time.Duration

	// MinPasswordLength is enforced by [ValidateSignupInput], not by the
	// store. The reference signup view rejects passwords under 8 characters.
	MinPasswordLength int
}

/*
====================================
PERSIST CONFIG
====================================
*/

// PersistConfig controls where the active Session is serialized.
type PersistConfig struct {
	// StorageKey is the single named slot holding the serialized Session.
	// Only the store's transition logic writes to it.
	StorageKey string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process metrics counters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

const (
	defaultSimulatedLatency  = 800 * time.Millisecond
	defaultMinPasswordLength = 8
	defaultStorageKey        = "projecthealth_user"
)

// DefaultConfig returns the configuration matching the reference design:
// 800ms simulated latency, 8-character minimum passwords, the
// "projecthealth_user" storage slot, audit and metrics disabled.
func DefaultConfig() Config {
	return Config{
		Auth: AuthConfig{
			SimulatedLatency:  defaultSimulatedLatency,
			MinPasswordLength: defaultMinPasswordLength,
		},
		Persist: PersistConfig{
			StorageKey: defaultStorageKey,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks the configuration for internally inconsistent values.
// Builder.Build calls it before constructing the store.
func (c *Config) Validate() error {
	if c.Auth.SimulatedLatency < 0 {
		return errors.New("Auth SimulatedLatency must be >= 0")
	}
	if c.Auth.MinPasswordLength < 1 {
		return errors.New("Auth MinPasswordLength must be >= 1")
	}
	if c.Persist.StorageKey == "" {
		return errors.New("Persist StorageKey must not be empty")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when Audit is enabled")
	}
	return nil
}
