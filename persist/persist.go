package persist

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the slot holds no record.
var ErrNotFound = errors.New("persist: record not found")

// ErrUnavailable wraps infrastructure failures (filesystem, redis transport).
var ErrUnavailable = errors.New("persist: backend unavailable")

// Backend is a named byte slot. Implementations must be safe for concurrent
// use; the session store serializes its own writes but readers may race a
// writer on a different store instance.
type Backend interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
