package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/vpn"
)

// VPNManager is the tunnel lifecycle surface the HTTP layer needs.
type VPNManager interface {
	UploadConfig(ctx context.Context, originalName string, reader io.Reader) (*model.VPNConfig, error)
	Activate(ctx context.Context, id db.UUID) error
	Deactivate(ctx context.Context) error
	Status(ctx context.Context) (vpn.Status, error)
	DeleteConfig(ctx context.Context, id db.UUID) error
}

type UploadVPNConfigResponse struct {
	Success bool             `json:"success"`
	Config  *model.VPNConfig `json:"config"`
}

type VPNActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func UploadVPNConfigHandler(mgr VPNManager) http.HandlerFunc {
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

		cfg, err := mgr.UploadConfig(r.Context(), header.Filename, file)
		if err != nil {
			if errors.Is(err, vpn.ErrUnsupportedConfig) {
				WriteError(w, http.StatusBadRequest, "only .ovpn files are allowed", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not upload VPN config %q", header.Filename), err)
			return
		}

		RespondJSON(w, http.StatusCreated, UploadVPNConfigResponse{Success: true, Config: cfg})
		logger.Infof(r.Context(), "✅  Successfully uploaded VPN config #%s (%q)", cfg.ID, cfg.OriginalName)
	}
}

func ActivateVPNHandler(mgr VPNManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := mgr.Activate(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, vpn.ErrConfigNotFound):
				WriteError(w, http.StatusNotFound, fmt.Sprintf("VPN config #%s not found", id), err)
			case errors.Is(err, vpn.ErrBinaryMissing):
				WriteError(w, http.StatusBadRequest, "OpenVPN is not installed on the server", err)
			default:
				WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not activate VPN config #%s", id), err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, VPNActionResponse{Success: true, Message: "VPN activated"})
		logger.Infof(r.Context(), "✅  Successfully activated VPN config #%s", id)
	}
}

func DeactivateVPNHandler(mgr VPNManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := mgr.Deactivate(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not deactivate VPN", err)
			return
		}

		RespondJSON(w, http.StatusOK, VPNActionResponse{Success: true, Message: "VPN deactivated"})
		logger.Infof(r.Context(), "✅  Successfully deactivated VPN")
	}
}

func VPNStatusHandler(mgr VPNManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := mgr.Status(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not get VPN status", err)
			return
		}

		RespondJSON(w, http.StatusOK, st)
	}
}

func DeleteVPNConfigHandler(mgr VPNManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := mgr.DeleteConfig(r.Context(), id); err != nil {
			if errors.Is(err, vpn.ErrConfigNotFound) {
				WriteError(w, http.StatusNotFound, fmt.Sprintf("VPN config #%s not found", id), err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not delete VPN config #%s", id), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted VPN config #%s", id)
	}
}
