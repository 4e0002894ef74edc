package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/julisunkan/maka/internal/port"
)

// DefaultUserAgent is sent when the caller does not pick one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client performs outbound GETs with per-call timeouts and a classified
// error taxonomy: ErrTimeout, ErrConnection, *StatusError.
type Client struct {
	httpClient *http.Client
}

// compile-time check: *Client must satisfy port.Fetcher
var _ port.Fetcher = (*Client)(nil)

func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// Fetch issues a GET for rawURL. The returned body streams; closing it
// releases the request's timeout context, so callers must always close it.
func (c *Client) Fetch(ctx context.Context, rawURL string, opts port.FetchOptions) (*port.FetchResult, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	cancel := context.CancelFunc(func() {})
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		cancel()
		return nil, err
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Encoding", "identity")
	// An absent Range must not be forwarded as an empty header.
	if opts.RangeHeader != "" {
		req.Header.Set("Range", opts.RangeHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, classify(u, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		cancel()
		return nil, &StatusError{URL: u.Redacted(), StatusCode: resp.StatusCode}
	}

	finalURL := u.String()
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &port.FetchResult{
		Body:         &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		ContentRange: resp.Header.Get("Content-Range"),
		FinalURL:     finalURL,
	}, nil
}

// classify maps transport failures to the package sentinels. The redacted
// URL keeps embedded credentials out of user-facing messages.
func classify(u *url.URL, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: GET %s", ErrTimeout, u.Redacted())
	}
	return fmt.Errorf("%w: GET %s", ErrConnection, u.Redacted())
}

// cancelOnClose ties the fetch context's lifetime to the response body.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
