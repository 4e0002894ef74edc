package api

import (
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

func ListMediaHandler(svc port.MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medias, err := svc.ListMedia(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not list medias", err)
			return
		}

		RespondJSON(w, http.StatusOK, medias)
		logger.Infof(r.Context(), "✅  Successfully listed %d medias", len(medias))
	}
}
