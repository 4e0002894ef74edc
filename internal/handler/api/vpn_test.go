package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	guuid "github.com/google/uuid"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/vpn"
)

type mockVPNManager struct {
	cfg    *model.VPNConfig
	status vpn.Status

	uploadErr     error
	activateErr   error
	deactivateErr error
	statusErr     error
	deleteErr     error

	uploadedName  string
	activatedID   db.UUID
	deactivated   bool
	deletedID     db.UUID
}

func (m *mockVPNManager) UploadConfig(ctx context.Context, originalName string, reader io.Reader) (*model.VPNConfig, error) {
	m.uploadedName = originalName
	return m.cfg, m.uploadErr
}
func (m *mockVPNManager) Activate(ctx context.Context, id db.UUID) error {
	m.activatedID = id
	return m.activateErr
}
func (m *mockVPNManager) Deactivate(ctx context.Context) error {
	m.deactivated = true
	return m.deactivateErr
}
func (m *mockVPNManager) Status(ctx context.Context) (vpn.Status, error) {
	return m.status, m.statusErr
}
func (m *mockVPNManager) DeleteConfig(ctx context.Context, id db.UUID) error {
	m.deletedID = id
	return m.deleteErr
}

var _ VPNManager = (*mockVPNManager)(nil)

func TestUploadVPNConfigHandler_Success(t *testing.T) {
	id := db.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	mgr := &mockVPNManager{cfg: &model.VPNConfig{ID: id, Filename: "home_20240101_120000.ovpn", OriginalName: "home.ovpn"}}

	body, contentType := multipartBody(t, nil, "file", "home.ovpn", "client\nremote vpn.example.com 1194\n")
	req := httptest.NewRequest(http.MethodPost, "/vpn/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	UploadVPNConfigHandler(mgr)(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201; body %s", rr.Code, rr.Body.String())
	}
	if mgr.uploadedName != "home.ovpn" {
		t.Errorf("uploaded name = %q", mgr.uploadedName)
	}

	var resp UploadVPNConfigResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Config == nil || resp.Config.OriginalName != "home.ovpn" {
		t.Errorf("response = %+v", resp)
	}
}

func TestUploadVPNConfigHandler_WrongExtension(t *testing.T) {
	mgr := &mockVPNManager{uploadErr: vpn.ErrUnsupportedConfig}

	body, contentType := multipartBody(t, nil, "file", "config.txt", "nope")
	req := httptest.NewRequest(http.MethodPost, "/vpn/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	UploadVPNConfigHandler(mgr)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rr.Code)
	}
}

func newVPNIDRequest(method, path string, id db.UUID) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	ctx := context.WithValue(req.Context(), IDKey, id)
	return req.WithContext(ctx)
}

func TestActivateVPNHandler(t *testing.T) {
	id := db.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"unknown config", vpn.ErrConfigNotFound, http.StatusNotFound},
		{"binary missing", vpn.ErrBinaryMissing, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr := &mockVPNManager{activateErr: tc.err}
			rr := httptest.NewRecorder()

			ActivateVPNHandler(mgr)(rr, newVPNIDRequest(http.MethodPost, "/vpn/activate/"+id.String(), id))

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rr.Code, tc.wantStatus)
			}
			if mgr.activatedID != id {
				t.Errorf("activated ID = %s; want %s", mgr.activatedID, id)
			}
		})
	}
}

func TestDeactivateVPNHandler(t *testing.T) {
	mgr := &mockVPNManager{}
	rr := httptest.NewRecorder()

	DeactivateVPNHandler(mgr)(rr, httptest.NewRequest(http.MethodPost, "/vpn/deactivate", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if !mgr.deactivated {
		t.Error("expected deactivation")
	}
}

func TestVPNStatusHandler(t *testing.T) {
	mgr := &mockVPNManager{status: vpn.Status{
		IsActive:   true,
		IsRunning:  true,
		State:      vpn.StateActive,
		AllConfigs: []model.VPNConfig{{OriginalName: "home.ovpn"}},
	}}
	rr := httptest.NewRecorder()

	VPNStatusHandler(mgr)(rr, httptest.NewRequest(http.MethodGet, "/vpn/status", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	var st vpn.Status
	if err := json.Unmarshal(rr.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !st.IsActive || !st.IsRunning || st.State != vpn.StateActive || len(st.AllConfigs) != 1 {
		t.Errorf("status = %+v", st)
	}
}

func TestDeleteVPNConfigHandler(t *testing.T) {
	id := db.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"unknown config", vpn.ErrConfigNotFound, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr := &mockVPNManager{deleteErr: tc.err}
			rr := httptest.NewRecorder()

			DeleteVPNConfigHandler(mgr)(rr, newVPNIDRequest(http.MethodDelete, "/vpn/"+id.String(), id))

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
