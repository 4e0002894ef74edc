package api

import (
	"errors"
	"fmt"
	"net/http"

	guuid "github.com/google/uuid"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

type UploadSubtitleResponse struct {
	Success bool `json:"success"`
	port.UploadSubtitleOutput
}

func UploadSubtitleHandler(svc port.SubtitleUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID := r.FormValue("media_id")
		parsedID, err := guuid.Parse(mediaID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("media_id %q is not a valid UUID", mediaID), err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a file is required", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				logger.Warnf(r.Context(), "could not close upload: %v", err)
			}
		}()

		out, err := svc.UploadSubtitle(r.Context(), port.UploadSubtitleInput{
			MediaID:      db.UUID(parsedID),
			Language:     r.FormValue("language"),
			OriginalName: header.Filename,
			SizeBytes:    header.Size,
			Reader:       file,
		})
		if err != nil {
			switch {
			case errors.Is(err, media.ErrObjectNotFound):
				WriteError(w, http.StatusNotFound, fmt.Sprintf("media #%s not found", mediaID), err)
			case errors.Is(err, media.ErrUnsupportedFileType):
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("file type of %q is not allowed", header.Filename), err)
			case errors.Is(err, media.ErrFileTooLarge):
				WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file %q is too large", header.Filename), err)
			default:
				WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not upload subtitle %q", header.Filename), err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, UploadSubtitleResponse{Success: true, UploadSubtitleOutput: out})
		logger.Infof(r.Context(), "✅  Successfully uploaded subtitle #%s for media #%s", out.ID, mediaID)
	}
}
