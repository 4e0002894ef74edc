package media

import (
	"context"
	"errors"
	"time"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

type cleanerSrv struct {
	deleter port.MediaDeleter
	repo    port.MediaRepository
}

// NewCleaner constructs the age-based cleanup use case. Deletion of each
// media goes through the regular deleter so files, subtitles and caches are
// handled the same way as a manual delete.
func NewCleaner(deleter port.MediaDeleter, repo port.MediaRepository) port.Cleaner {
	return &cleanerSrv{deleter: deleter, repo: repo}
}

func (s *cleanerSrv) CleanupOlderThan(ctx context.Context, olderThan time.Duration) (port.CleanupReport, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	medias, err := s.repo.ListUploadedBefore(ctx, cutoff)
	if err != nil {
		return port.CleanupReport{}, err
	}

	var report port.CleanupReport
	for _, m := range medias {
		if err := s.deleter.DeleteMedia(ctx, m.Filename); err != nil {
			if errors.Is(err, ErrObjectNotFound) {
				continue
			}
			logger.Errorf(ctx, "cleanup: could not delete %q: %v", m.Filename, err)
			continue
		}
		report.DeletedCount++
		report.FreedBytes += m.SizeBytes
	}

	logger.Infof(ctx, "✅  Cleanup removed %d medias older than %s (%d bytes)", report.DeletedCount, olderThan, report.FreedBytes)
	return report, nil
}
