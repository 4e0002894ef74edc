package api

import (
	"encoding/json"
	"net/http"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/validation"
)

type ProxyBrowseRequest struct {
	URL       string `json:"url" validate:"required"`
	UseVPN    bool   `json:"use_vpn"`
	UserAgent string `json:"user_agent"`
}

type ProxyBrowseResponse struct {
	Success bool `json:"success"`
	port.BrowseOutput
}

func ProxyBrowseHandler(svc port.PageBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProxyBrowseRequest
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

		out, err := svc.Browse(r.Context(), port.BrowseInput{
			URL:       req.URL,
			UseVPN:    req.UseVPN,
			UserAgent: req.UserAgent,
		})
		if err != nil {
			writeFetchError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, ProxyBrowseResponse{Success: true, BrowseOutput: out})
		logger.Infof(r.Context(), "✅  Successfully browsed %q (HTTP %d)", req.URL, out.StatusCode)
	}
}
