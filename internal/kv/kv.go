// Package kv is the storage boundary: each collection is one JSON blob under
// a fixed string key, read and written whole.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for keys that were never written. Callers
// treat it as an empty collection, never as a failure.
var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
