package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julisunkan/maka/internal/mock"
	"github.com/julisunkan/maka/internal/model"
)

func TestListMediaHandler_Success(t *testing.T) {
	svc := &mock.MediaLister{Out: []model.Media{
		{Filename: "b.mp4"},
		{Filename: "a.mp3"},
	}}
	rr := httptest.NewRecorder()

	ListMediaHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/medias", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	var medias []model.Media
	if err := json.Unmarshal(rr.Body.Bytes(), &medias); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(medias) != 2 || medias[0].Filename != "b.mp4" {
		t.Errorf("medias = %+v", medias)
	}
}

func TestListMediaHandler_EmptyCatalog(t *testing.T) {
	svc := &mock.MediaLister{Out: []model.Media{}}
	rr := httptest.NewRecorder()

	ListMediaHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/medias", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if got := rr.Body.String(); got != "[]\n" {
		t.Errorf("body = %q; want empty JSON array", got)
	}
}

func TestListMediaHandler_Error(t *testing.T) {
	svc := &mock.MediaLister{Err: errors.New("db down")}
	rr := httptest.NewRecorder()

	ListMediaHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/medias", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rr.Code)
	}
}
