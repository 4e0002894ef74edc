package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

func GetMetadataHandler(ren port.HTTPRenderer, getter port.MetadataGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, ok := FilenameFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "filename is required", nil)
			return
		}

		raw, etag, err := ren.RenderGetMetadata(r.Context(), getter, filename)
		if err != nil {
			if errors.Is(err, media.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, fmt.Sprintf("media %q not found", filename), err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not get metadata of media %q", filename), err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Infof(r.Context(), "✅  Successfully got metadata of media %q", filename)
	}
}
