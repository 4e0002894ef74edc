package cache

import (
	"context"
	"time"

	"github.com/julisunkan/maka/internal/port"
)

// NoopCache stands in when no Redis address is configured.
type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetMediaDetails(ctx context.Context, filename string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagMediaDetails(ctx context.Context, filename string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetMediaDetails(ctx context.Context, filename string, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagMediaDetails(ctx context.Context, filename string, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteMediaDetails(ctx context.Context, filename string) error { return nil }

func (n *NoopCache) DeleteEtagMediaDetails(ctx context.Context, filename string) error {
	return nil
}
