package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	guuid "github.com/google/uuid"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/mock"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
)

func TestUploadRecordingHandler_Success(t *testing.T) {
	id := db.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	svc := &mock.RecordingUploader{Out: port.UploadMediaOutput{
		ID: id, Filename: "recording_audio_20240101_120000.webm", FileType: "audio",
	}}

	body, contentType := multipartBody(t, map[string]string{"type": "audio"}, "file", "blob", "webm bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload_recording", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	UploadRecordingHandler(svc)(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201; body %s", rr.Code, rr.Body.String())
	}
	if svc.In.RecordingType != "audio" {
		t.Errorf("recording type = %q; want %q", svc.In.RecordingType, "audio")
	}
}

func TestUploadRecordingHandler_TooLarge(t *testing.T) {
	svc := &mock.RecordingUploader{Err: media.ErrFileTooLarge}

	body, contentType := multipartBody(t, nil, "file", "blob", "x")
	req := httptest.NewRequest(http.MethodPost, "/upload_recording", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	UploadRecordingHandler(svc)(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d; want 413", rr.Code)
	}
}
