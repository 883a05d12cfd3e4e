// Package kv is the persistence port for cart snapshots: a small key-value
// store mirroring the browser localStorage the storefront originally used.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound signals an absent key. Absence means "no prior state", never a
// hard failure.
var ErrNotFound = errors.New("kv: key not found")

// Store is implemented by the SQLite and Redis adapters.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
