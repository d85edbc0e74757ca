package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache is a JSON value store. A miss is reported as found=false, not as an
// error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

const ProductKeyPrefix = "product"

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

func ProductKey(id uuid.UUID) string {
	return Key(ProductKeyPrefix, id.String())
}
