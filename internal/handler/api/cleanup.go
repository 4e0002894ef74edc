package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

const defaultCleanupHours = 24

type CleanupRequest struct {
	Hours int `json:"hours"`
}

type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CleanupHandler enqueues a cleanup run; the worker does the deleting.
func CleanupHandler(disp port.TaskDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CleanupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if req.Hours <= 0 {
			req.Hours = defaultCleanupHours
		}

		olderThan := time.Duration(req.Hours) * time.Hour
		if err := disp.EnqueueCleanup(r.Context(), olderThan); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not enqueue cleanup", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, CleanupResponse{
			Success: true,
			Message: fmt.Sprintf("cleanup of medias older than %dh enqueued", req.Hours),
		})
		logger.Infof(r.Context(), "✅  Successfully enqueued cleanup of medias older than %dh", req.Hours)
	}
}
