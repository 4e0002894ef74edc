package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

type mediaDeleterSrv struct {
	repo    port.MediaRepository
	subRepo port.SubtitleRepository
	strg    port.Storage
	subStrg port.Storage
	cache   port.Cache
}

// NewMediaDeleter constructs the media deletion use case. strg holds media
// files, subStrg subtitle files.
func NewMediaDeleter(repo port.MediaRepository, subRepo port.SubtitleRepository, strg, subStrg port.Storage, cache port.Cache) port.MediaDeleter {
	return &mediaDeleterSrv{repo: repo, subRepo: subRepo, strg: strg, subStrg: subStrg, cache: cache}
}

// DeleteMedia removes the media file, its subtitle files and its catalog
// record. Subtitle and analytics rows go with the record through FK cascades.
func (s *mediaDeleterSrv) DeleteMedia(ctx context.Context, filename string) error {
	m, err := s.repo.GetByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}

	subs, err := s.subRepo.ListByMediaID(ctx, m.ID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := s.subStrg.RemoveFile(sub.Filename); err != nil && !errors.Is(err, ErrObjectNotFound) {
			logger.Warnf(ctx, "could not remove subtitle file %q: %v", sub.Filename, err)
		}
	}

	if err := s.strg.RemoveFile(m.Filename); err != nil && !errors.Is(err, ErrObjectNotFound) {
		return err
	}

	if err := s.repo.Delete(ctx, m.ID); err != nil {
		return err
	}

	if err := s.cache.DeleteMediaDetails(ctx, filename); err != nil {
		logger.Warnf(ctx, "could not invalidate details cache for %q: %v", filename, err)
	}
	if err := s.cache.DeleteEtagMediaDetails(ctx, filename); err != nil {
		logger.Warnf(ctx, "could not invalidate etag cache for %q: %v", filename, err)
	}

	logger.Infof(ctx, "✅  Deleted media #%s (%q)", m.ID, filename)
	return nil
}
