package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

// GetSubtitleHandler serves a stored subtitle file. Subtitles are small and
// immutable once written, so no range support is needed.
func GetSubtitleHandler(strg port.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, ok := FilenameFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "filename is required", nil)
			return
		}

		f, err := strg.OpenFile(filename)
		if err != nil {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("subtitle %q not found", filename), err)
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Warnf(r.Context(), "could not close subtitle %q: %v", filename, err)
			}
		}()

		w.Header().Set("Content-Type", media.MimeTypeForName(filename))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, f); err != nil {
			logger.Debugf(r.Context(), "subtitle send of %q interrupted: %v", filename, err)
		}
	}
}
