package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a fetch exceeds its timeout budget.
	ErrTimeout = errors.New("upstream: request timed out")
	// ErrConnection is returned when the remote host cannot be reached.
	ErrConnection = errors.New("upstream: connection failed")
)

// StatusError reports a non-2xx response from the remote server.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e == nil {
		return "upstream: HTTP error"
	}
	return fmt.Sprintf("upstream: HTTP %d fetching %s", e.StatusCode, e.URL)
}
