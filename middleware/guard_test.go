package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	authshell "github.com/projecthealth/authshell"
)

func buildStore(t *testing.T) *authshell.Store {
	t.Helper()
	cfg := authshell.DefaultConfig()
	cfg.Auth.SimulatedLatency = 0
	store, err := authshell.New().WithConfig(cfg).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func login(t *testing.T, store *authshell.Store, role authshell.Role) authshell.Session {
	t.Helper()
	if err := store.Login(context.Background(), "alice@acme.com", "pw", role); err != nil {
		t.Fatalf("Login: %v", err)
	}
	sess, _ := store.CurrentUser()
	return sess
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	store := buildStore(t)

	ran := false
	h := Guard(store, "/login")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		ran = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if ran {
		t.Fatal("protected handler must never run for anonymous requests")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("code = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("location = %q", loc)
	}
}

func TestGuardInjectsSession(t *testing.T) {
	store := buildStore(t)
	want := login(t, store, authshell.RoleMember)

	var got authshell.Session
	var ok bool
	h := Guard(store, "/login")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = SessionFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if !ok || got != want {
		t.Fatalf("context session = %+v, %v", got, ok)
	}
}

func TestRequireManager(t *testing.T) {
	store := buildStore(t)
	login(t, store, authshell.RoleMember)

	chain := Guard(store, "/login")(RequireManager()(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
	)))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/team", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member code = %d, want 403", rec.Code)
	}

	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	login(t, store, authshell.RoleManager)

	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/team", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("manager code = %d, want 200", rec.Code)
	}
}

func TestRequireManagerWithoutGuardRejects(t *testing.T) {
	h := RequireManager()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/team", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", rec.Code)
	}
}
