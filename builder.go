package authshell

import (
	"context"
	"errors"
	"fmt"

	internalaudit "github.com/projecthealth/authshell/internal/audit"
	"github.com/projecthealth/authshell/persist"
)

// Builder assembles a Store. Configure with the WithX methods and finish with
// [Builder.Build]; a builder is single-use.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config  Config
	backend persist.Backend
	auth    Authenticator
	sink    AuditSink

	built bool
}

// New returns a Builder preloaded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBackend sets the persistence backend. Defaults to an in-process
// [persist.Memory] slot.
func (b *Builder) WithBackend(backend persist.Backend) *Builder {
	b.backend = backend
	return b
}

// WithAuthenticator replaces the default [PassthroughAuthenticator]. This is
// the substitution point for real credential verification.
func (b *Builder) WithAuthenticator(a Authenticator) *Builder {
	b.auth = a
	return b
}

// WithAuditSink enables audit dispatch into sink.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.sink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the authenticate latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration, wires defaults, and performs the one-time
// session restoration that decides the initial state: a readable persisted
// record starts the store Authenticated, anything else starts it Anonymous.
//
// Only an unavailable backend fails the build; a corrupt record is deleted
// and ignored.
func (b *Builder) Build(ctx context.Context) (*Store, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	backend := b.backend
	if backend == nil {
		backend = persist.NewMemory(0)
	}

	auth := b.auth
	if auth == nil {
		auth = PassthroughAuthenticator{Latency: b.config.Auth.SimulatedLatency}
	}

	store := &Store{
		cfg:     b.config,
		auth:    auth,
		backend: backend,
		metrics: NewMetrics(b.config.Metrics),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, b.sink),
		state: StateAnonymous,
	}

	if err := store.restore(ctx); err != nil {
		store.audit.Close()
		return nil, err
	}

	b.built = true

	return store, nil
}
