package stream

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

type mediaStreamerSrv struct {
	repo port.MediaRepository
	strg port.Storage
}

// NewMediaStreamer constructs the streaming use case. Callers own the
// returned source's reader and must close it.
func NewMediaStreamer(repo port.MediaRepository, strg port.Storage) port.MediaStreamer {
	return &mediaStreamerSrv{repo: repo, strg: strg}
}

// OpenStream resolves a stored filename to a seekable byte source plus the
// size and content type the response headers need. An unknown filename or a
// record whose file has gone missing both come back as ErrObjectNotFound.
func (s *mediaStreamerSrv) OpenStream(ctx context.Context, filename string) (*port.StreamSource, error) {
	m, err := s.repo.GetByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, media.ErrObjectNotFound
		}
		return nil, err
	}

	info, err := s.strg.StatFile(m.Filename)
	if err != nil {
		return nil, err
	}

	f, err := s.strg.OpenFile(m.Filename)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", m.Filename, err)
	}

	return &port.StreamSource{
		Reader:    f,
		SizeBytes: info.SizeBytes,
		MimeType:  m.MimeType,
	}, nil
}
