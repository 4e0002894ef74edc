package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, ok := FilenameFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "filename is required", nil)
			return
		}

		if err := svc.DeleteMedia(r.Context(), filename); err != nil {
			if errors.Is(err, media.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, fmt.Sprintf("media %q not found", filename), err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not delete media %q", filename), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted media %q", filename)
	}
}
