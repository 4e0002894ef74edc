package port

import (
	"context"
	"time"

	"github.com/julisunkan/maka/internal/db"
)

// TaskDispatcher enqueues background jobs for the worker.
type TaskDispatcher interface {
	EnqueueConvertSubtitle(ctx context.Context, id db.UUID) error
	EnqueueCleanup(ctx context.Context, olderThan time.Duration) error
}
