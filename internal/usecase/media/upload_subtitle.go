package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type subtitleUploaderSrv struct {
	mediaRepo  port.MediaRepository
	subRepo    port.SubtitleRepository
	strg       port.Storage
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
	maxSize    int64
}

// NewSubtitleUploader constructs the subtitle upload use case. strg must be
// the subtitle-directory storage, not the media one.
func NewSubtitleUploader(mediaRepo port.MediaRepository, subRepo port.SubtitleRepository, strg port.Storage, dispatcher port.TaskDispatcher, genUUID port.UUIDGen, maxSize int64) port.SubtitleUploader {
	return &subtitleUploaderSrv{
		mediaRepo:  mediaRepo,
		subRepo:    subRepo,
		strg:       strg,
		dispatcher: dispatcher,
		genUUID:    genUUID,
		maxSize:    maxSize,
	}
}

func (s *subtitleUploaderSrv) UploadSubtitle(ctx context.Context, in port.UploadSubtitleInput) (port.UploadSubtitleOutput, error) {
	if !IsSubtitleName(in.OriginalName) {
		return port.UploadSubtitleOutput{}, ErrUnsupportedFileType
	}
	if in.SizeBytes > s.maxSize {
		return port.UploadSubtitleOutput{}, ErrFileTooLarge
	}

	if _, err := s.mediaRepo.GetByID(ctx, in.MediaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.UploadSubtitleOutput{}, ErrObjectNotFound
		}
		return port.UploadSubtitleOutput{}, err
	}

	stored, err := s.strg.SaveFile(ctx, in.OriginalName, in.Reader)
	if err != nil {
		return port.UploadSubtitleOutput{}, fmt.Errorf("save subtitle %q: %w", in.OriginalName, err)
	}

	language := in.Language
	if language == "" {
		language = "unknown"
	}

	sub := &model.Subtitle{
		ID:         s.genUUID(),
		MediaID:    in.MediaID,
		Filename:   stored,
		Language:   language,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		if rmErr := s.strg.RemoveFile(stored); rmErr != nil {
			logger.Warnf(ctx, "could not remove orphan subtitle %q: %v", stored, rmErr)
		}
		return port.UploadSubtitleOutput{}, err
	}

	// Players want WebVTT; convert SRT uploads in the background.
	if strings.HasSuffix(strings.ToLower(stored), ".srt") {
		if err := s.dispatcher.EnqueueConvertSubtitle(ctx, sub.ID); err != nil {
			logger.Warnf(ctx, "could not enqueue conversion of subtitle #%s: %v", sub.ID, err)
		}
	}

	return port.UploadSubtitleOutput{ID: sub.ID, Filename: sub.Filename}, nil
}
