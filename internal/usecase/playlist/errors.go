package playlist

import "errors"

var (
	// ErrNoItems signals that the playlist fetched fine but held nothing playable.
	ErrNoItems = errors.New("no valid playlist items found")
	// ErrTunnelInactive signals a use_vpn request while no tunnel is up.
	ErrTunnelInactive = errors.New("VPN is not active")
)
