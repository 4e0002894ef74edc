package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type metadataGetterSrv struct {
	repo port.MediaRepository
}

// NewMetadataGetter constructs the metadata lookup use case.
func NewMetadataGetter(repo port.MediaRepository) port.MetadataGetter {
	return &metadataGetterSrv{repo: repo}
}

func (s *metadataGetterSrv) GetMetadata(ctx context.Context, filename string) (*model.Media, error) {
	m, err := s.repo.GetByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return m, nil
}
