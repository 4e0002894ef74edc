package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/validation"
)

type UpdateAnalyticsRequest struct {
	Filename  string  `json:"filename" validate:"required"`
	EventType string  `json:"event_type" validate:"required"`
	WatchTime float64 `json:"watch_time"`
}

type UpdateAnalyticsResponse struct {
	Success bool `json:"success"`
}

func UpdateAnalyticsHandler(svc port.AnalyticsRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "could not read request body", err)
			return
		}

		var req UpdateAnalyticsRequest
		if err := json.Unmarshal(body, &req); err != nil {
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

		// the event log keeps the whole payload, not just the known fields
		var payload model.Payload
		if err := json.Unmarshal(body, &payload); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if err := svc.RecordPlayback(r.Context(), port.RecordPlaybackInput{
			Filename:  req.Filename,
			EventType: req.EventType,
			WatchTime: req.WatchTime,
			Payload:   payload,
		}); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not record playback event", err)
			return
		}

		RespondJSON(w, http.StatusOK, UpdateAnalyticsResponse{Success: true})
		logger.Infof(r.Context(), "✅  Successfully recorded %q event for media %q", req.EventType, req.Filename)
	}
}
