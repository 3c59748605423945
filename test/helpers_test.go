//go:build integration
// +build integration

package test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	authshell "github.com/projecthealth/authshell"
	"github.com/projecthealth/authshell/persist"
)

func newRedisBackend(t *testing.T) (*persist.Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return persist.NewRedis(rdb, "", 0), mr
}

func newRedisStore(t *testing.T, backend persist.Backend) *authshell.Store {
	t.Helper()

	cfg := authshell.DefaultConfig()
	cfg.Auth.SimulatedLatency = 0
	cfg.Metrics.Enabled = true

	store, err := authshell.New().
		WithConfig(cfg).
		WithBackend(backend).
		Build(context.Background())
	if err != nil {
		t.Fatalf("store build failed: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}
