package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

type UploadMediaResponse struct {
	Success bool `json:"success"`
	port.UploadMediaOutput
}

func UploadMediaHandler(svc port.MediaUploader) http.HandlerFunc {
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

		out, err := svc.UploadMedia(r.Context(), port.UploadMediaInput{
			OriginalName: header.Filename,
			SizeBytes:    header.Size,
			Reader:       file,
		})
		if err != nil {
			switch {
			case errors.Is(err, media.ErrUnsupportedFileType):
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("file type of %q is not allowed", header.Filename), err)
			case errors.Is(err, media.ErrFileTooLarge):
				WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file %q is too large", header.Filename), err)
			default:
				WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not upload %q", header.Filename), err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, UploadMediaResponse{Success: true, UploadMediaOutput: out})
		logger.Infof(r.Context(), "✅  Successfully uploaded media #%s (%q)", out.ID, out.Filename)
	}
}
