package proxy

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

type resourceProxierSrv struct {
	fetcher port.Fetcher
	opts    port.FetchOptions
}

// compile-time check: *resourceProxierSrv must satisfy port.ResourceProxier
var _ port.ResourceProxier = (*resourceProxierSrv)(nil)

// NewResourceProxier constructs the CORS proxy use case. opts carries the
// fetch timeout and User-Agent shared by every proxied request.
func NewResourceProxier(fetcher port.Fetcher, opts port.FetchOptions) port.ResourceProxier {
	return &resourceProxierSrv{fetcher: fetcher, opts: opts}
}

// ProxyResource fetches the upstream resource. Manifests come back fully
// rewritten; everything else streams through untouched, so callers must
// close the returned body.
func (s *resourceProxierSrv) ProxyResource(ctx context.Context, in port.ProxyResourceInput) (*port.ProxiedResource, error) {
	opts := s.opts
	opts.RangeHeader = in.RangeHeader

	res, err := s.fetcher.Fetch(ctx, in.URL, opts)
	if err != nil {
		return nil, err
	}

	// classify by the URL the fetch actually landed on, so a redirect onto
	// (or off of) a manifest still gets the right treatment
	if IsManifestURL(res.FinalURL) {
		defer func() {
			if err := res.Body.Close(); err != nil {
				logger.Warnf(ctx, "could not close manifest body: %v", err)
			}
		}()

		content, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("read manifest body: %w", err)
		}

		rewritten := RewriteManifest(string(content), res.FinalURL)
		return &port.ProxiedResource{
			Body:        io.NopCloser(strings.NewReader(rewritten)),
			StatusCode:  res.StatusCode,
			ContentType: "application/vnd.apple.mpegurl",
		}, nil
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if strings.HasSuffix(stripQuery(res.FinalURL), ".ts") {
		contentType = "video/mp2t"
	}

	return &port.ProxiedResource{
		Body:         res.Body,
		StatusCode:   res.StatusCode,
		ContentType:  contentType,
		ContentRange: res.ContentRange,
	}, nil
}
