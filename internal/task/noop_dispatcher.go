package task

import (
	"context"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/port"
)

// NoopDispatcher stands in when no Redis address is configured. Background
// work silently does not happen.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueConvertSubtitle(ctx context.Context, id db.UUID) error {
	return nil
}

func (d *NoopDispatcher) EnqueueCleanup(ctx context.Context, olderThan time.Duration) error {
	return nil
}
