package task

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/port"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueConvertSubtitle(ctx context.Context, id db.UUID) error {
	t, err := NewConvertSubtitleTask(id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}

func (d *Dispatcher) EnqueueCleanup(ctx context.Context, olderThan time.Duration) error {
	t, err := NewCleanupMediaTask(int64(olderThan.Seconds()))
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
