package authshell

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/projecthealth/authshell/internal/audit"
	"github.com/projecthealth/authshell/persist"
)

// Store is the single authority over the active session. All transitions go
// through it; nothing else writes the session or its persisted copy.
//
// Store instances are intended to be configured during initialization through
// [Builder.Build] and then treated as immutable unless documented otherwise.
type Store struct {
	cfg     Config
	auth    Authenticator
	backend persist.Backend
	audit   *audit.Dispatcher
	metrics *Metrics

	mu      sync.Mutex
	state   State
	session Session
	closed  bool
}

/*
====================================
ACCESSORS
====================================
*/

// CurrentUser returns the active session and whether one exists. The returned
// value is a copy; mutating it has no effect on the store.
func (s *Store) CurrentUser() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return Session{}, false
	}
	return s.session, true
}

// IsAuthenticated reports whether a session is active. Derived on every call,
// never cached.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated
}

// IsManager reports whether the active session carries the manager role.
// False when no session is active.
func (s *Store) IsManager() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated && s.session.Role == RoleManager
}

// IsLoading reports whether a Login or Signup attempt is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticating
}

// State returns the store's current lifecycle position.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

/*
====================================
TRANSITIONS
====================================
*/

// Login authenticates email/password for the given role and activates the
// resulting session. It blocks through the authenticator's latency window
// (default 800ms) and respects ctx cancellation: a cancelled attempt restores
// the state that was active before the call.
//
// A concurrent Login or Signup fails fast with ErrAuthInFlight.
func (s *Store) Login(ctx context.Context, email, password string, role Role) error {
	return s.authenticate(ctx, Credentials{
		Email:    email,
		Password: password,
		Role:     role,
	}, AuditLogin, MetricLoginSuccess, MetricLoginFailure)
}

// Signup behaves like Login but passes name through verbatim instead of
// deriving it from the email local part.
func (s *Store) Signup(ctx context.Context, email, password, name string, role Role) error {
	return s.authenticate(ctx, Credentials{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	}, AuditSignup, MetricSignupSuccess, MetricSignupFailure)
}

func (s *Store) authenticate(ctx context.Context, creds Credentials, eventType string, okID, failID MetricID) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !creds.Role.Valid() {
		s.metrics.Inc(failID)
		s.emitAudit(ctx, eventType, Session{Email: creds.Email}, false, ErrRoleInvalid)
		return ErrRoleInvalid
	}

	// Enter the loading state, remembering what to roll back to.
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	if s.state == StateAuthenticating {
		s.mu.Unlock()
		s.metrics.Inc(MetricAuthRejectedInFlight)
		return ErrAuthInFlight
	}
	prevState, prevSession := s.state, s.session
	s.state = StateAuthenticating
	s.mu.Unlock()

	rollback := func() {
		s.mu.Lock()
		s.state, s.session = prevState, prevSession
		s.mu.Unlock()
	}

	start := time.Now()
	sess, err := s.auth.Authenticate(ctx, creds)
	s.metrics.Observe(MetricAuthenticateLatency, time.Since(start))
	if err != nil {
		rollback()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.metrics.Inc(MetricAuthCancelled)
		} else {
			s.metrics.Inc(failID)
		}
		s.emitAudit(ctx, eventType, Session{Email: creds.Email}, false, err)
		return err
	}

	data, err := encodeSession(sess)
	if err == nil {
		err = s.backend.Save(ctx, s.cfg.Persist.StorageKey, data)
	}
	if err != nil {
		rollback()
		s.metrics.Inc(MetricPersistFailure)
		s.metrics.Inc(failID)
		s.emitAudit(ctx, AuditPersistFailure, sess, false, err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		// Close raced the attempt after the record was already written. Undo
		// both halves: the loading state and the slot, which must match the
		// rolled-back state, not the session that never became active.
		rollback()
		if prevState == StateAuthenticated {
			if prevData, encErr := encodeSession(prevSession); encErr == nil {
				_ = s.backend.Save(ctx, s.cfg.Persist.StorageKey, prevData)
			}
		} else {
			_ = s.backend.Delete(ctx, s.cfg.Persist.StorageKey)
		}
		return ErrStoreClosed
	}
	s.state = StateAuthenticated
	s.session = sess
	s.mu.Unlock()

	s.metrics.Inc(okID)
	s.emitAudit(ctx, eventType, sess, true, nil)
	return nil
}

// Logout clears the active session and deletes the persisted record. It is
// synchronous and idempotent; calling it while Anonymous is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return nil
	}
	prev := s.session
	s.state = StateAnonymous
	s.session = Session{}
	s.mu.Unlock()

	s.metrics.Inc(MetricLogout)
	s.emitAudit(ctx, AuditLogout, prev, true, nil)

	// The in-memory session is already gone; a failed delete leaves only the
	// stale persisted copy behind and is reported, not rolled back.
	if err := s.backend.Delete(ctx, s.cfg.Persist.StorageKey); err != nil {
		s.metrics.Inc(MetricPersistFailure)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

// restore loads the persisted record once, at Build time. A missing record
// means Anonymous. A corrupt record is deleted and also means Anonymous; it
// never fails the build. Only an unavailable backend surfaces as an error.
func (s *Store) restore(ctx context.Context) error {
	data, err := s.backend.Load(ctx, s.cfg.Persist.StorageKey)
	if err != nil {
		if errors.Is(err, persist.ErrNotFound) {
			s.metrics.Inc(MetricRestoreEmpty)
			return nil
		}
		return fmt.Errorf("restore: %w", err)
	}

	sess, err := decodeSession(data)
	if err != nil {
		s.metrics.Inc(MetricRestoreCorrupt)
		s.emitAudit(ctx, AuditRestoreCorrupt, Session{}, false, err)
		_ = s.backend.Delete(ctx, s.cfg.Persist.StorageKey)
		return nil
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.session = sess
	s.mu.Unlock()

	s.metrics.Inc(MetricRestoreSuccess)
	s.emitAudit(ctx, AuditRestore, sess, true, nil)
	return nil
}

/*
====================================
LIFECYCLE / OBSERVABILITY
====================================
*/

// Close disposes the store: subsequent transitions fail with ErrStoreClosed
// and the audit dispatcher is drained. Accessors keep working on the final
// state. Safe to call more than once.
func (s *Store) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.audit.Close()
}

// AuditDropped returns how many audit events were discarded because the
// buffer was full.
func (s *Store) AuditDropped() uint64 {
	if s == nil {
		return 0
	}
	return s.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (s *Store) MetricsSnapshot() MetricsSnapshot {
	if s == nil || s.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return s.metrics.Snapshot()
}

// Metrics exposes the underlying counters for exporters.
func (s *Store) Metrics() *Metrics {
	if s == nil {
		return nil
	}
	return s.metrics
}

func (s *Store) emitAudit(ctx context.Context, eventType string, sess Session, success bool, opErr error) {
	if s.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		SessionID: sess.ID,
		Email:     sess.Email,
		Role:      string(sess.Role),
		IP:        clientIPFromContext(ctx),
		UserAgent: userAgentFromContext(ctx),
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	s.audit.Emit(ctx, event)
}
