// Package persistence contains the local key-value medium the store is built on
// and helpers shared by its implementations.
package persistence

import (
	"context"
	"errors"
)

// ErrUnavailable is returned once a medium has been closed or cannot be reached.
var ErrUnavailable = errors.New("persistence medium unavailable")

// Medium is a local key-value namespace. Get returns (nil, nil) for absent keys.
type Medium interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
