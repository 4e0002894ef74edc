package port

import (
	"context"
	"time"
)

// Cache stores rendered media metadata payloads keyed by stored filename.
type Cache interface {
	GetMediaDetails(ctx context.Context, filename string) ([]byte, error)
	GetEtagMediaDetails(ctx context.Context, filename string) (string, error)
	SetMediaDetails(ctx context.Context, filename string, data []byte, ttl time.Duration)
	SetEtagMediaDetails(ctx context.Context, filename string, etag string, ttl time.Duration)
	DeleteMediaDetails(ctx context.Context, filename string) error
	DeleteEtagMediaDetails(ctx context.Context, filename string) error
}
