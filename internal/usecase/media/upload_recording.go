package media

import (
	"context"
	"fmt"
	"time"

	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type recordingUploaderSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	genUUID port.UUIDGen
	maxSize int64
}

// NewRecordingUploader constructs the browser-recording upload use case.
// Recordings always arrive as webm.
func NewRecordingUploader(repo port.MediaRepository, strg port.Storage, genUUID port.UUIDGen, maxSize int64) port.RecordingUploader {
	return &recordingUploaderSrv{repo: repo, strg: strg, genUUID: genUUID, maxSize: maxSize}
}

func (s *recordingUploaderSrv) UploadRecording(ctx context.Context, in port.UploadRecordingInput) (port.UploadMediaOutput, error) {
	recType := in.RecordingType
	if recType != model.FileTypeAudio {
		recType = model.FileTypeVideo
	}
	if in.SizeBytes > s.maxSize {
		return port.UploadMediaOutput{}, ErrFileTooLarge
	}

	name := fmt.Sprintf("recording_%s.webm", recType)
	stored, err := s.strg.SaveFile(ctx, name, in.Reader)
	if err != nil {
		return port.UploadMediaOutput{}, fmt.Errorf("save recording: %w", err)
	}

	info, err := s.strg.StatFile(stored)
	if err != nil {
		return port.UploadMediaOutput{}, fmt.Errorf("stat recording %q: %w", stored, err)
	}

	mimeType := "video/webm"
	if recType == model.FileTypeAudio {
		mimeType = "audio/webm"
	}

	now := time.Now().UTC()
	m := &model.Media{
		ID:           s.genUUID(),
		Filename:     stored,
		OriginalName: fmt.Sprintf("Recording %s", now.Format("20060102_150405")),
		FileType:     recType,
		SizeBytes:    info.SizeBytes,
		MimeType:     mimeType,
		UploadedAt:   now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		_ = s.strg.RemoveFile(stored)
		return port.UploadMediaOutput{}, err
	}

	return port.UploadMediaOutput{ID: m.ID, Filename: m.Filename, FileType: m.FileType}, nil
}
