package port

import (
	"context"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
)

// MediaRepository defines persistence operations for medias.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Media, error)
	GetByFilename(ctx context.Context, filename string) (*model.Media, error)
	List(ctx context.Context) ([]model.Media, error)
	Delete(ctx context.Context, ID db.UUID) error
	IncrementPlayCount(ctx context.Context, ID db.UUID) error
	AddWatchTime(ctx context.Context, ID db.UUID, seconds float64) error
	ListUploadedBefore(ctx context.Context, before time.Time) ([]model.Media, error)
}

// SubtitleRepository defines persistence operations for subtitles.
type SubtitleRepository interface {
	Create(ctx context.Context, sub *model.Subtitle) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Subtitle, error)
	GetByFilename(ctx context.Context, filename string) (*model.Subtitle, error)
	ListByMediaID(ctx context.Context, mediaID db.UUID) ([]model.Subtitle, error)
	UpdateFilename(ctx context.Context, ID db.UUID, filename string) error
	DeleteByMediaID(ctx context.Context, mediaID db.UUID) error
}

// AnalyticsRepository appends playback events. Events are never mutated.
type AnalyticsRepository interface {
	RecordEvent(ctx context.Context, event *model.AnalyticsEvent) error
}

// VPNConfigRepository defines persistence operations for OpenVPN profiles.
type VPNConfigRepository interface {
	Create(ctx context.Context, cfg *model.VPNConfig) error
	GetByID(ctx context.Context, ID db.UUID) (*model.VPNConfig, error)
	GetActive(ctx context.Context) (*model.VPNConfig, error)
	List(ctx context.Context) ([]model.VPNConfig, error)
	SetActive(ctx context.Context, ID db.UUID) error
	DeactivateAll(ctx context.Context) error
	Delete(ctx context.Context, ID db.UUID) error
}
