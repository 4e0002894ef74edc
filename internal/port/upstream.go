package port

import (
	"context"
	"io"
	"time"
)

// FetchOptions tunes one outbound fetch.
type FetchOptions struct {
	Timeout     time.Duration
	UserAgent   string
	RangeHeader string
}

// FetchResult is a successfully fetched upstream response. Body streams and
// must be closed by the caller.
type FetchResult struct {
	Body         io.ReadCloser
	StatusCode   int
	ContentType  string
	ContentRange string
	FinalURL     string
}

// Fetcher performs outbound HTTP requests with classified errors
// (see the upstream package for the error taxonomy).
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, opts FetchOptions) (*FetchResult, error)
}

// TunnelStatus reports whether the encrypted tunnel is confirmed up.
type TunnelStatus interface {
	IsTunnelActive(ctx context.Context) bool
}
