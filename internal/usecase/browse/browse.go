package browse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/playlist"
)

// userAgents maps client-side browser choices to real UA strings. Unknown
// choices fall back to chrome-windows.
var userAgents = map[string]string{
	"chrome-windows":  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"chrome-mac":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"firefox-windows": "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"firefox-mac":     "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:121.0) Gecko/20100101 Firefox/121.0",
	"safari-mac":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"edge-windows":    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"chrome-android":  "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
	"safari-ios":      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"firefox-android": "Mozilla/5.0 (Android 10; Mobile; rv:121.0) Gecko/121.0 Firefox/121.0",
}

// UserAgentFor resolves a client-side browser choice to a UA string.
func UserAgentFor(choice string) string {
	if ua, ok := userAgents[choice]; ok {
		return ua
	}
	return userAgents["chrome-windows"]
}

type pageBrowserSrv struct {
	fetcher port.Fetcher
	tunnel  port.TunnelStatus
	opts    port.FetchOptions
}

// compile-time check: *pageBrowserSrv must satisfy port.PageBrowser
var _ port.PageBrowser = (*pageBrowserSrv)(nil)

// NewPageBrowser constructs the page-fetching use case.
func NewPageBrowser(fetcher port.Fetcher, tunnel port.TunnelStatus, opts port.FetchOptions) port.PageBrowser {
	return &pageBrowserSrv{fetcher: fetcher, tunnel: tunnel, opts: opts}
}

func (s *pageBrowserSrv) Browse(ctx context.Context, in port.BrowseInput) (port.BrowseOutput, error) {
	if in.UseVPN && !s.tunnel.IsTunnelActive(ctx) {
		return port.BrowseOutput{}, playlist.ErrTunnelInactive
	}

	rawURL := in.URL
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	opts := s.opts
	opts.UserAgent = UserAgentFor(in.UserAgent)

	res, err := s.fetcher.Fetch(ctx, rawURL, opts)
	if err != nil {
		return port.BrowseOutput{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.Warnf(ctx, "could not close page body: %v", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return port.BrowseOutput{}, fmt.Errorf("read page body: %w", err)
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "text/html"
	}

	out := port.BrowseOutput{
		Content:     string(body),
		FinalURL:    res.FinalURL,
		ContentType: contentType,
		StatusCode:  res.StatusCode,
		IsMedia:     isMediaContentType(contentType),
	}
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		out.Title = extractTitle(body)
	}
	return out, nil
}

func isMediaContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "video/") || strings.Contains(ct, "audio/") || strings.Contains(ct, "image/")
}

// extractTitle pulls the <title> of an HTML document; empty when the markup
// has none or does not parse.
func extractTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
