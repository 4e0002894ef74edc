package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/task"
)

// ConvertSubtitleHandler handles a convert-subtitle task.
// It converts the incoming task payload to the ID expected by the
// media.SubtitleConverter service and delegates the call.
func ConvertSubtitleHandler(ctx context.Context, p task.ConvertSubtitlePayload, svc port.SubtitleConverter) error {
	id, err := uuid.Parse(p.SubtitleID)
	if err != nil {
		log.Printf("❌  Invalid subtitle ID %q: %v", p.SubtitleID, err)
		return err
	}

	if err := svc.ConvertSubtitle(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to convert subtitle #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully converted subtitle #%s", id)
	return nil
}
