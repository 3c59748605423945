//go:build integration
// +build integration

package test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authshell "github.com/projecthealth/authshell"
	"github.com/projecthealth/authshell/middleware"
	"github.com/projecthealth/authshell/persist"
)

func TestRedisBackedSessionLifecycle(t *testing.T) {
	backend, _ := newRedisBackend(t)
	store := newRedisStore(t, backend)

	if store.IsAuthenticated() {
		t.Fatal("expected anonymous start")
	}

	if err := store.Login(context.Background(), "alice@acme.com", "pw", authshell.RoleManager); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	want, _ := store.CurrentUser()

	// A second store over the same backend restores the session.
	second := newRedisStore(t, backend)
	got, ok := second.CurrentUser()
	if !ok || got != want {
		t.Fatalf("restored session = %+v, %v", got, ok)
	}

	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	key := authshell.DefaultConfig().Persist.StorageKey
	if _, err := backend.Load(context.Background(), key); !errors.Is(err, persist.ErrNotFound) {
		t.Fatalf("slot should be empty after logout, got %v", err)
	}
}

func TestRedisOutageFailsLoginAndRollsBack(t *testing.T) {
	backend, mr := newRedisBackend(t)
	store := newRedisStore(t, backend)

	mr.Close()

	err := store.Login(context.Background(), "alice@acme.com", "pw", authshell.RoleMember)
	if !errors.Is(err, authshell.ErrPersistFailed) {
		t.Fatalf("login err = %v, want ErrPersistFailed", err)
	}
	if store.IsAuthenticated() {
		t.Fatal("expected rollback to anonymous")
	}

	snap := store.MetricsSnapshot()
	if snap.Counters[authshell.MetricPersistFailure] != 1 {
		t.Fatalf("persist failure counter = %d", snap.Counters[authshell.MetricPersistFailure])
	}
}

func TestGuardedRouteOverRedisStore(t *testing.T) {
	backend, _ := newRedisBackend(t)
	store := newRedisStore(t, backend)

	h := middleware.Guard(store, "/login")(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
	))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("anonymous code = %d, want 302", rec.Code)
	}

	if err := store.Login(context.Background(), "alice@acme.com", "pw", authshell.RoleMember); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated code = %d, want 200", rec.Code)
	}
}
