package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/upstream"
	"github.com/julisunkan/maka/internal/usecase/playlist"
	"github.com/julisunkan/maka/internal/validation"
)

type ParsePlaylistRequest struct {
	URL    string `json:"url" validate:"required"`
	UseVPN bool   `json:"use_vpn"`
}

type ParsePlaylistResponse struct {
	Success bool                `json:"success"`
	Items   []port.PlaylistItem `json:"items"`
}

func ParsePlaylistHandler(svc port.PlaylistParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ParsePlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Errorf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		items, err := svc.ParsePlaylist(r.Context(), port.ParsePlaylistInput{
			URL:    req.URL,
			UseVPN: req.UseVPN,
		})
		if err != nil {
			writeFetchError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, ParsePlaylistResponse{Success: true, Items: items})
		logger.Infof(r.Context(), "✅  Successfully parsed playlist %q (%d items)", req.URL, len(items))
	}
}

// writeFetchError maps outbound-fetch failures onto the API contract: every
// recoverable kind is a 400 with a human-readable reason, anything else a 500.
func writeFetchError(w http.ResponseWriter, err error) {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, playlist.ErrTunnelInactive):
		WriteError(w, http.StatusBadRequest, "VPN is not active", err)
	case errors.Is(err, playlist.ErrNoItems):
		WriteError(w, http.StatusBadRequest, "no valid playlist items found", err)
	case errors.Is(err, upstream.ErrTimeout):
		WriteError(w, http.StatusBadRequest, "the request timed out", err)
	case errors.Is(err, upstream.ErrConnection):
		WriteError(w, http.StatusBadRequest, "could not connect to the remote server", err)
	case errors.As(err, &statusErr):
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("the remote server returned HTTP %d", statusErr.StatusCode), err)
	default:
		WriteError(w, http.StatusInternalServerError, "an unexpected error occurred", err)
	}
}
