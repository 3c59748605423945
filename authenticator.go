package authshell

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projecthealth/authshell/password"
)

// Authenticator resolves credentials into a Session. The store owns all state
// transitions; an authenticator only decides whether the attempt succeeds and
// what identity it yields.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (Session, error)
}

/*
====================================
PASSTHROUGH
====================================
*/

// PassthroughAuthenticator accepts any credentials after a fixed delay. It
// reproduces the reference behavior: no verification, a fresh UUID per
// attempt, and a display name derived from the email local part when the
// caller supplies none.
//
// This is the default strategy and it is deliberately not a security
// mechanism.
type PassthroughAuthenticator struct {
	// Latency is the simulated round-trip before the attempt resolves.
	Latency time.Duration
}

func (p PassthroughAuthenticator) Authenticate(ctx context.Context, creds Credentials) (Session, error) {
	if p.Latency > 0 {
		timer := time.NewTimer(p.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Session{}, ctx.Err()
		}
	}

	name := creds.Name
	if name == "" {
		name = NameLocalPart(creds.Email)
	}

	return Session{
		ID:    uuid.NewString(),
		Email: creds.Email,
		Name:  name,
		Role:  creds.Role,
	}, nil
}

/*
====================================
ACCOUNT REGISTRY
====================================
*/

type account struct {
	hash string
	name string
	role Role
}

// AccountAuthenticator verifies credentials against an in-memory registry of
// argon2id password hashes. It is the opt-in substitution point for a real
// backend; the store never installs it on its own.
//
// Login resolves identity from the registered account. Signup registers the
// account first (duplicate emails fail) and then authenticates it.
type AccountAuthenticator struct {
	mu       sync.RWMutex
	accounts map[string]account
	hasher   *password.Argon2
	latency  time.Duration
}

// NewAccountAuthenticator returns an empty registry using the default argon2id
// parameters. latency mirrors PassthroughAuthenticator's simulated delay and
// may be zero.
func NewAccountAuthenticator(latency time.Duration) (*AccountAuthenticator, error) {
	hasher, err := password.NewArgon2(password.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &AccountAuthenticator{
		accounts: make(map[string]account),
		hasher:   hasher,
		latency:  latency,
	}, nil
}

// Register adds an account. Returns an error when the email is already taken
// or the hash fails.
func (a *AccountAuthenticator) Register(email, pass, name string, role Role) error {
	if !role.Valid() {
		return ErrRoleInvalid
	}
	key := normalizeEmail(email)
	if key == "" {
		return ErrEmailRequired
	}

	hash, err := a.hasher.Hash(pass)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.accounts[key]; exists {
		return fmt.Errorf("%w: account exists", ErrInvalidCredentials)
	}
	a.accounts[key] = account{hash: hash, name: name, role: role}
	return nil
}

func (a *AccountAuthenticator) Authenticate(ctx context.Context, creds Credentials) (Session, error) {
	if a.latency > 0 {
		timer := time.NewTimer(a.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Session{}, ctx.Err()
		}
	}

	// Signup path: the caller supplied a name, so register then sign in.
	if creds.Name != "" {
		if err := a.Register(creds.Email, creds.Password, creds.Name, creds.Role); err != nil {
			return Session{}, err
		}
	}

	a.mu.RLock()
	acct, ok := a.accounts[normalizeEmail(creds.Email)]
	a.mu.RUnlock()
	if !ok {
		return Session{}, ErrInvalidCredentials
	}

	match, err := a.hasher.Verify(creds.Password, acct.hash)
	if err != nil || !match {
		return Session{}, ErrInvalidCredentials
	}

	return Session{
		ID:    uuid.NewString(),
		Email: creds.Email,
		Name:  acct.name,
		Role:  acct.role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
