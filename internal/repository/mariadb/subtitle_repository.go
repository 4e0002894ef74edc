package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type SubtitleRepository struct {
	db *sql.DB
}

// compile-time check: *SubtitleRepository must satisfy port.SubtitleRepository
var _ port.SubtitleRepository = (*SubtitleRepository)(nil)

func NewSubtitleRepository(db *sql.DB) *SubtitleRepository {
	return &SubtitleRepository{db: db}
}

const subtitleColumns = "id, media_id, filename, language, uploaded_at"

func (r *SubtitleRepository) Create(ctx context.Context, sub *model.Subtitle) error {
	log.Printf("creating database record for subtitle #%s (%q)...", sub.ID, sub.Filename)

	const query = `
      INSERT INTO subtitles (id, media_id, filename, language, uploaded_at)
      VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.MediaID, sub.Filename, sub.Language, sub.UploadedAt,
	)
	return err
}

func (r *SubtitleRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Subtitle, error) {
	const query = "SELECT " + subtitleColumns + " FROM subtitles WHERE id = ?"
	return scanSubtitle(r.db.QueryRowContext(ctx, query, ID))
}

func (r *SubtitleRepository) GetByFilename(ctx context.Context, filename string) (*model.Subtitle, error) {
	const query = "SELECT " + subtitleColumns + " FROM subtitles WHERE filename = ?"
	return scanSubtitle(r.db.QueryRowContext(ctx, query, filename))
}

func (r *SubtitleRepository) ListByMediaID(ctx context.Context, mediaID db.UUID) ([]model.Subtitle, error) {
	const query = "SELECT " + subtitleColumns + " FROM subtitles WHERE media_id = ? ORDER BY uploaded_at"
	rows, err := r.db.QueryContext(ctx, query, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.Subtitle
	for rows.Next() {
		var sub model.Subtitle
		if err := rows.Scan(&sub.ID, &sub.MediaID, &sub.Filename, &sub.Language, &sub.UploadedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *SubtitleRepository) UpdateFilename(ctx context.Context, ID db.UUID, filename string) error {
	log.Printf("repointing subtitle #%s to %q...", ID, filename)

	const query = "UPDATE subtitles SET filename = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, filename, ID)
	return err
}

func (r *SubtitleRepository) DeleteByMediaID(ctx context.Context, mediaID db.UUID) error {
	const query = "DELETE FROM subtitles WHERE media_id = ?"
	_, err := r.db.ExecContext(ctx, query, mediaID)
	return err
}

func scanSubtitle(row *sql.Row) (*model.Subtitle, error) {
	var sub model.Subtitle
	if err := row.Scan(&sub.ID, &sub.MediaID, &sub.Filename, &sub.Language, &sub.UploadedAt); err != nil {
		return nil, err
	}
	return &sub, nil
}
