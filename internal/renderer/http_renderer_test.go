package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/mock"
	"github.com/julisunkan/maka/internal/model"
)

type fakeCache struct {
	details map[string][]byte
	etags   map[string]string

	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{details: map[string][]byte{}, etags: map[string]string{}}
}
func (c *fakeCache) GetMediaDetails(ctx context.Context, filename string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.details[filename], nil
}
func (c *fakeCache) GetEtagMediaDetails(ctx context.Context, filename string) (string, error) {
	return c.etags[filename], nil
}
func (c *fakeCache) SetMediaDetails(ctx context.Context, filename string, data []byte, ttl time.Duration) {
	c.details[filename] = data
}
func (c *fakeCache) SetEtagMediaDetails(ctx context.Context, filename string, etag string, ttl time.Duration) {
	c.etags[filename] = etag
}
func (c *fakeCache) DeleteMediaDetails(ctx context.Context, filename string) error {
	delete(c.details, filename)
	return nil
}
func (c *fakeCache) DeleteEtagMediaDetails(ctx context.Context, filename string) error {
	delete(c.etags, filename)
	return nil
}

func TestRenderGetMetadata_CacheMissThenHit(t *testing.T) {
	cache := newFakeCache()
	r := NewHTTPRenderer(cache)
	getter := &mock.MetadataGetter{Out: &model.Media{ID: db.NewUUID(), Filename: "movie.mp4", PlayCount: 7}}

	raw, etag, err := r.RenderGetMetadata(context.Background(), getter, "movie.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !getter.Called {
		t.Error("getter should run on a cache miss")
	}
	if etag == "" || etag[0] != '"' {
		t.Errorf("etag = %q; want a quoted value", etag)
	}

	var decoded model.Media
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.PlayCount != 7 {
		t.Errorf("PlayCount = %d; want 7", decoded.PlayCount)
	}

	// second call comes from cache
	getter.Called = false
	raw2, etag2, err := r.RenderGetMetadata(context.Background(), getter, "movie.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if getter.Called {
		t.Error("getter should not run on a cache hit")
	}
	if string(raw2) != string(raw) || etag2 != etag {
		t.Error("cached response should be identical")
	}
}

func TestRenderGetMetadata_GetterError(t *testing.T) {
	r := NewHTTPRenderer(newFakeCache())
	wantErr := errors.New("not found")
	getter := &mock.MetadataGetter{Err: wantErr}

	_, _, err := r.RenderGetMetadata(context.Background(), getter, "missing.mp4")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected getter error, got %v", err)
	}
}

func TestRenderGetMetadata_CacheErrorFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	r := NewHTTPRenderer(cache)
	getter := &mock.MetadataGetter{Out: &model.Media{Filename: "movie.mp4"}}

	raw, _, err := r.RenderGetMetadata(context.Background(), getter, "movie.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !getter.Called || raw == nil {
		t.Error("a cache failure should fall back to the use case")
	}
}
