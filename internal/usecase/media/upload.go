package media

import (
	"context"
	"fmt"
	"time"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type mediaUploaderSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	genUUID port.UUIDGen
	maxSize int64
}

// NewMediaUploader constructs the media upload use case. maxSize bounds the
// accepted file size in bytes.
func NewMediaUploader(repo port.MediaRepository, strg port.Storage, genUUID port.UUIDGen, maxSize int64) port.MediaUploader {
	return &mediaUploaderSrv{repo: repo, strg: strg, genUUID: genUUID, maxSize: maxSize}
}

func (s *mediaUploaderSrv) UploadMedia(ctx context.Context, in port.UploadMediaInput) (port.UploadMediaOutput, error) {
	fileType, ok := FileTypeForName(in.OriginalName)
	if !ok {
		return port.UploadMediaOutput{}, ErrUnsupportedFileType
	}
	if in.SizeBytes > s.maxSize {
		return port.UploadMediaOutput{}, ErrFileTooLarge
	}

	stored, err := s.strg.SaveFile(ctx, in.OriginalName, in.Reader)
	if err != nil {
		return port.UploadMediaOutput{}, fmt.Errorf("save upload %q: %w", in.OriginalName, err)
	}

	info, err := s.strg.StatFile(stored)
	if err != nil {
		return port.UploadMediaOutput{}, fmt.Errorf("stat upload %q: %w", stored, err)
	}

	m := &model.Media{
		ID:           s.genUUID(),
		Filename:     stored,
		OriginalName: in.OriginalName,
		FileType:     fileType,
		SizeBytes:    info.SizeBytes,
		MimeType:     MimeTypeForName(stored),
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		// Don't leave an orphan file behind.
		if rmErr := s.strg.RemoveFile(stored); rmErr != nil {
			logger.Warnf(ctx, "could not remove orphan file %q: %v", stored, rmErr)
		}
		return port.UploadMediaOutput{}, err
	}

	return port.UploadMediaOutput{ID: m.ID, Filename: m.Filename, FileType: m.FileType}, nil
}
