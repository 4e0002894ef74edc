package playlist

import (
	"context"
	"fmt"
	"io"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

type playlistParserSrv struct {
	fetcher port.Fetcher
	tunnel  port.TunnelStatus
	opts    port.FetchOptions
}

// compile-time check: *playlistParserSrv must satisfy port.PlaylistParser
var _ port.PlaylistParser = (*playlistParserSrv)(nil)

// NewPlaylistParser constructs the playlist fetch-and-parse use case. opts
// carries the fetch timeout and User-Agent shared by every playlist request.
func NewPlaylistParser(fetcher port.Fetcher, tunnel port.TunnelStatus, opts port.FetchOptions) port.PlaylistParser {
	return &playlistParserSrv{fetcher: fetcher, tunnel: tunnel, opts: opts}
}

func (s *playlistParserSrv) ParsePlaylist(ctx context.Context, in port.ParsePlaylistInput) ([]port.PlaylistItem, error) {
	if in.UseVPN && !s.tunnel.IsTunnelActive(ctx) {
		return nil, ErrTunnelInactive
	}

	res, err := s.fetcher.Fetch(ctx, in.URL, s.opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.Warnf(ctx, "could not close playlist body: %v", err)
		}
	}()

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read playlist body: %w", err)
	}

	items := Parse(string(content), res.FinalURL)
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	logger.Debugf(ctx, "parsed %d playlist items from %q", len(items), in.URL)
	return items, nil
}
