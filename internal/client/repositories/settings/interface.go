// Package settings is a key/value store for application-wide singleton
// values, such as the pointer to the currently signed-in user.
package settings

import (
	"context"
)

// Repository persists raw values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
