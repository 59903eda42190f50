package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

// KV stores opaque values under string keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is a KV backend with a connection lifecycle.
type Store interface {
	KV

	Ping(ctx context.Context) error
	Close() error
}
