package worker

import (
	"context"
	"log"
	"time"

	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/task"
)

// CleanupMediaHandler handles a cleanup-media task, deleting every media
// older than the cutoff carried by the payload.
func CleanupMediaHandler(ctx context.Context, p task.CleanupMediaPayload, svc port.Cleaner) error {
	olderThan := time.Duration(p.OlderThanSeconds) * time.Second

	report, err := svc.CleanupOlderThan(ctx, olderThan)
	if err != nil {
		log.Printf("❌  Cleanup failed: %v", err)
		return err
	}

	log.Printf("✅  Cleanup done: %d medias deleted, %d bytes freed", report.DeletedCount, report.FreedBytes)
	return nil
}
