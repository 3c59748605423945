package test

import (
	"context"
	"time"

	authshell "github.com/projecthealth/authshell"
	"github.com/projecthealth/authshell/persist"
)

// ExampleNew demonstrates store construction with production-style dependencies.
func ExampleNew() {
	cfg := authshell.DefaultConfig()
	cfg.Auth.SimulatedLatency = 200 * time.Millisecond

	store, _ := authshell.New().
		WithConfig(cfg).
		WithBackend(persist.NewFile("./data")).
		Build(context.Background())
	defer store.Close()
	// Output:
}

// ExampleStore_Login shows a typical login call and structured error handling.
func ExampleStore_Login() {
	store, _ := authshell.New().Build(context.Background())
	defer store.Close()

	if err := store.Login(context.Background(), "alice@acme.com", "pw", authshell.RoleMember); err != nil {
		_ = err
	}
	// Output:
}
