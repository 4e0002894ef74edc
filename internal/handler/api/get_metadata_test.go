package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julisunkan/maka/internal/mock"
	"github.com/julisunkan/maka/internal/usecase/media"
)

func newMetadataRequest(filename, ifNoneMatch string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/metadata/"+filename, nil)
	if ifNoneMatch != "" {
		req.Header.Set("If-None-Match", ifNoneMatch)
	}
	ctx := context.WithValue(req.Context(), FilenameKey, filename)
	return req.WithContext(ctx)
}

func TestGetMetadataHandler_Success(t *testing.T) {
	ren := &mock.HTTPRenderer{Data: []byte(`{"filename":"movie.mp4"}`), Etag: `"cafebabe"`}
	getter := &mock.MetadataGetter{}
	rr := httptest.NewRecorder()

	GetMetadataHandler(ren, getter)(rr, newMetadataRequest("movie.mp4", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if got := rr.Header().Get("ETag"); got != `"cafebabe"` {
		t.Errorf("ETag = %q", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rr.Body.String(); got != `{"filename":"movie.mp4"}` {
		t.Errorf("body = %q", got)
	}
	if ren.Filename != "movie.mp4" {
		t.Errorf("renderer filename = %q", ren.Filename)
	}
}

func TestGetMetadataHandler_NotModified(t *testing.T) {
	ren := &mock.HTTPRenderer{Data: []byte(`{}`), Etag: `"cafebabe"`}
	rr := httptest.NewRecorder()

	GetMetadataHandler(ren, &mock.MetadataGetter{})(rr, newMetadataRequest("movie.mp4", `"cafebabe"`))

	if rr.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want 304", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rr.Body.String())
	}
}

func TestGetMetadataHandler_NotFound(t *testing.T) {
	ren := &mock.HTTPRenderer{Err: media.ErrObjectNotFound}
	rr := httptest.NewRecorder()

	GetMetadataHandler(ren, &mock.MetadataGetter{})(rr, newMetadataRequest("ghost.mp4", ""))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rr.Code)
	}
}
