package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julisunkan/maka/internal/db"
)

const EventTypePlay = "play"

// Payload is the free-form JSON body of an analytics event.
type Payload map[string]any

func (p Payload) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal Payload: %w", err)
	}
	return b, nil
}

func (p *Payload) Scan(src interface{}) error {
	if src == nil {
		*p = Payload{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Payload.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unmarshal Payload: %w", err)
	}
	return nil
}

// AnalyticsEvent is append-only; rows are never updated.
type AnalyticsEvent struct {
	ID        int64     `json:"id"`
	MediaID   db.UUID   `json:"media_id"`
	EventType string    `json:"event_type"`
	Data      Payload   `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}
