package mariadb

import (
	"context"
	"database/sql"

	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type AnalyticsRepository struct {
	db *sql.DB
}

// compile-time check: *AnalyticsRepository must satisfy port.AnalyticsRepository
var _ port.AnalyticsRepository = (*AnalyticsRepository)(nil)

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) RecordEvent(ctx context.Context, event *model.AnalyticsEvent) error {
	const query = `
      INSERT INTO analytics_events (media_id, event_type, data)
      VALUES (?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query, event.MediaID, event.EventType, event.Data)
	return err
}
