package media

import (
	"context"

	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type mediaListerSrv struct {
	repo port.MediaRepository
}

// NewMediaLister constructs the catalog listing use case.
func NewMediaLister(repo port.MediaRepository) port.MediaLister {
	return &mediaListerSrv{repo: repo}
}

func (s *mediaListerSrv) ListMedia(ctx context.Context) ([]model.Media, error) {
	medias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if medias == nil {
		medias = []model.Media{}
	}
	return medias, nil
}
