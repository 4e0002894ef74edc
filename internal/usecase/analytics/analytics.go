package analytics

import (
	"context"
	"database/sql"
	"errors"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type analyticsRecorderSrv struct {
	repo      port.MediaRepository
	eventRepo port.AnalyticsRepository
	cache     port.Cache
}

// compile-time check: *analyticsRecorderSrv must satisfy port.AnalyticsRecorder
var _ port.AnalyticsRecorder = (*analyticsRecorderSrv)(nil)

// NewAnalyticsRecorder constructs the playback analytics use case.
func NewAnalyticsRecorder(repo port.MediaRepository, eventRepo port.AnalyticsRepository, cache port.Cache) port.AnalyticsRecorder {
	return &analyticsRecorderSrv{repo: repo, eventRepo: eventRepo, cache: cache}
}

// RecordPlayback applies a playback event to the catalog counters and appends
// it to the event log. Events for filenames no longer in the catalog are
// dropped without error; playback reporting races deletion all the time.
func (s *analyticsRecorderSrv) RecordPlayback(ctx context.Context, in port.RecordPlaybackInput) error {
	m, err := s.repo.GetByFilename(ctx, in.Filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debugf(ctx, "dropping analytics event for unknown media %q", in.Filename)
			return nil
		}
		return err
	}

	if in.EventType == model.EventTypePlay {
		if err := s.repo.IncrementPlayCount(ctx, m.ID); err != nil {
			return err
		}
	}
	if in.WatchTime > 0 {
		if err := s.repo.AddWatchTime(ctx, m.ID, in.WatchTime); err != nil {
			return err
		}
	}

	event := &model.AnalyticsEvent{
		MediaID:   m.ID,
		EventType: in.EventType,
		Data:      in.Payload,
	}
	if err := s.eventRepo.RecordEvent(ctx, event); err != nil {
		return err
	}

	// Counters changed, cached metadata is stale now.
	if err := s.cache.DeleteMediaDetails(ctx, in.Filename); err != nil {
		logger.Warnf(ctx, "could not invalidate details cache for %q: %v", in.Filename, err)
	}
	if err := s.cache.DeleteEtagMediaDetails(ctx, in.Filename); err != nil {
		logger.Warnf(ctx, "could not invalidate etag cache for %q: %v", in.Filename, err)
	}
	return nil
}
