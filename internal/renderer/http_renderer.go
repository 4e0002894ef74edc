package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/julisunkan/maka/internal/port"
)

// metadataTTL bounds staleness when an invalidation is missed.
const metadataTTL = 5 * time.Minute

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new port.HTTPRenderer implementation backed by
// the given cache.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetMetadata fetches media metadata either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag
// string derived from it.
func (r *httpRenderer) RenderGetMetadata(ctx context.Context, getter port.MetadataGetter, filename string) ([]byte, string, error) {
	raw, err := r.cache.GetMediaDetails(ctx, filename)
	etag, errEtag := r.cache.GetEtagMediaDetails(ctx, filename)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetMetadata(ctx, filename)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetMediaDetails(ctx, filename, raw, metadataTTL)
	r.cache.SetEtagMediaDetails(ctx, filename, etag, metadataTTL)

	return raw, etag, nil
}
