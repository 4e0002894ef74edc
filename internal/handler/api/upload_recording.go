package api

import (
	"errors"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

func UploadRecordingHandler(svc port.RecordingUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		out, err := svc.UploadRecording(r.Context(), port.UploadRecordingInput{
			RecordingType: r.FormValue("type"),
			SizeBytes:     header.Size,
			Reader:        file,
		})
		if err != nil {
			if errors.Is(err, media.ErrFileTooLarge) {
				WriteError(w, http.StatusRequestEntityTooLarge, "recording is too large", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not save recording", err)
			return
		}

		RespondJSON(w, http.StatusCreated, UploadMediaResponse{Success: true, UploadMediaOutput: out})
		logger.Infof(r.Context(), "✅  Successfully saved recording #%s (%q)", out.ID, out.Filename)
	}
}
