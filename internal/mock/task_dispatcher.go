package mock

import (
	"context"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/port"
)

// TaskDispatcher implements port.TaskDispatcher for tests.
type TaskDispatcher struct {
	ConvertErr error
	CleanupErr error

	ConvertCalled bool
	ConvertID     db.UUID
	CleanupCalled bool
	OlderThan     time.Duration
}

var _ port.TaskDispatcher = (*TaskDispatcher)(nil)

func (m *TaskDispatcher) EnqueueConvertSubtitle(ctx context.Context, id db.UUID) error {
	m.ConvertCalled = true
	m.ConvertID = id
	return m.ConvertErr
}

func (m *TaskDispatcher) EnqueueCleanup(ctx context.Context, olderThan time.Duration) error {
	m.CleanupCalled = true
	m.OlderThan = olderThan
	return m.CleanupErr
}
