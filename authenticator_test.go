package authshell

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPassthroughAcceptsAnything(t *testing.T) {
	auth := PassthroughAuthenticator{}

	sess, err := auth.Authenticate(context.Background(), Credentials{
		Email: "dave@acme.com", Password: "whatever", Role: RoleMember,
	})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if sess.Name != "dave" {
		t.Fatalf("name = %q", sess.Name)
	}

	// Two attempts never share an ID.
	again, _ := auth.Authenticate(context.Background(), Credentials{Email: "dave@acme.com", Role: RoleMember})
	if again.ID == sess.ID {
		t.Fatal("expected fresh ID per attempt")
	}
}

func TestPassthroughHonorsCancellation(t *testing.T) {
	auth := PassthroughAuthenticator{Latency: 5 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := auth.Authenticate(ctx, Credentials{Email: "a@b.c", Role: RoleMember})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("cancellation did not interrupt the latency window")
	}
}

func TestAccountAuthenticatorVerifiesCredentials(t *testing.T) {
	auth, err := NewAccountAuthenticator(0)
	if err != nil {
		t.Fatalf("NewAccountAuthenticator: %v", err)
	}

	if err := auth.Register("eve@acme.com", "s3cret-pass", "Eve", RoleManager); err != nil {
		t.Fatalf("Register: %v", err)
	}

	sess, err := auth.Authenticate(context.Background(), Credentials{
		Email: "EVE@acme.com", Password: "s3cret-pass", Role: RoleMember,
	})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	// Identity comes from the registry, not the login form.
	if sess.Name != "Eve" || sess.Role != RoleManager {
		t.Fatalf("session = %+v", sess)
	}

	if _, err := auth.Authenticate(context.Background(), Credentials{
		Email: "eve@acme.com", Password: "wrong",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.Authenticate(context.Background(), Credentials{
		Email: "nobody@acme.com", Password: "s3cret-pass",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAccountAuthenticatorSignupPath(t *testing.T) {
	auth, err := NewAccountAuthenticator(0)
	if err != nil {
		t.Fatalf("NewAccountAuthenticator: %v", err)
	}

	sess, err := auth.Authenticate(context.Background(), Credentials{
		Email: "frank@acme.com", Password: "longenough", Name: "Frank", Role: RoleMember,
	})
	if err != nil {
		t.Fatalf("signup authenticate: %v", err)
	}
	if sess.Name != "Frank" {
		t.Fatalf("name = %q", sess.Name)
	}

	// Duplicate signup fails.
	if _, err := auth.Authenticate(context.Background(), Credentials{
		Email: "frank@acme.com", Password: "longenough", Name: "Frank", Role: RoleMember,
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("duplicate err = %v", err)
	}
}
