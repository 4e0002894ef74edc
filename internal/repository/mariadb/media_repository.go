package mariadb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

const mediaColumns = "id, filename, original_name, file_type, size_bytes, mime_type, uploaded_at, play_count, total_watch_time"

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s (%q)...", media.ID, media.Filename)

	const query = `
      INSERT INTO medias
        (id, filename, original_name, file_type, size_bytes, mime_type, uploaded_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.Filename, media.OriginalName,
		media.FileType, media.SizeBytes, media.MimeType,
		media.UploadedAt,
	)
	return err
}

func (r *MediaRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Media, error) {
	log.Printf("fetching media #%s from the database...", ID)

	const query = "SELECT " + mediaColumns + " FROM medias WHERE id = ?"
	return scanMedia(r.db.QueryRowContext(ctx, query, ID))
}

func (r *MediaRepository) GetByFilename(ctx context.Context, filename string) (*model.Media, error) {
	log.Printf("fetching media %q from the database...", filename)

	const query = "SELECT " + mediaColumns + " FROM medias WHERE filename = ?"
	return scanMedia(r.db.QueryRowContext(ctx, query, filename))
}

func (r *MediaRepository) List(ctx context.Context) ([]model.Media, error) {
	const query = "SELECT " + mediaColumns + " FROM medias ORDER BY uploaded_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMedias(rows)
}

func (r *MediaRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting database record for media #%s...", ID)

	const query = "DELETE FROM medias WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, ID)
	return err
}

func (r *MediaRepository) IncrementPlayCount(ctx context.Context, ID db.UUID) error {
	const query = "UPDATE medias SET play_count = play_count + 1 WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, ID)
	return err
}

func (r *MediaRepository) AddWatchTime(ctx context.Context, ID db.UUID, seconds float64) error {
	const query = "UPDATE medias SET total_watch_time = total_watch_time + ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, seconds, ID)
	return err
}

func (r *MediaRepository) ListUploadedBefore(ctx context.Context, before time.Time) ([]model.Media, error) {
	const query = "SELECT " + mediaColumns + " FROM medias WHERE uploaded_at < ?"
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMedias(rows)
}

func scanMedia(row *sql.Row) (*model.Media, error) {
	var media model.Media
	if err := row.Scan(
		&media.ID, &media.Filename, &media.OriginalName,
		&media.FileType, &media.SizeBytes, &media.MimeType,
		&media.UploadedAt, &media.PlayCount, &media.TotalWatchTime,
	); err != nil {
		return nil, err
	}
	return &media, nil
}

func collectMedias(rows *sql.Rows) ([]model.Media, error) {
	var medias []model.Media
	for rows.Next() {
		var media model.Media
		if err := rows.Scan(
			&media.ID, &media.Filename, &media.OriginalName,
			&media.FileType, &media.SizeBytes, &media.MimeType,
			&media.UploadedAt, &media.PlayCount, &media.TotalWatchTime,
		); err != nil {
			return nil, err
		}
		medias = append(medias, media)
	}
	return medias, rows.Err()
}
