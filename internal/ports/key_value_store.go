package ports

import "context"

// KeyValueStore holds named text records. Get returns domain.ErrRecordNotFound for unknown keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
