package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/upstream"
)

// ProxyResourceHandler fetches a remote resource on the player's behalf so
// browser same-origin rules never see the upstream host. Manifests arrive
// already rewritten by the use case; everything else streams through.
func ProxyResourceHandler(svc port.ResourceProxier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeCORSHeaders(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		encoded := chi.URLParam(r, "*")
		decoded, err := url.QueryUnescape(encoded)
		if err != nil || decoded == "" {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("resource URL %q is not valid", encoded), err)
			return
		}

		res, err := svc.ProxyResource(r.Context(), port.ProxyResourceInput{
			URL:         decoded,
			RangeHeader: r.Header.Get("Range"),
		})
		if err != nil {
			logger.Errorf(r.Context(), "❌  Could not proxy resource %q: %v", decoded, err)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "Error loading resource: %s", fetchFailureReason(err))
			return
		}
		defer func() {
			if err := res.Body.Close(); err != nil {
				logger.Warnf(r.Context(), "could not close proxied body: %v", err)
			}
		}()

		w.Header().Set("Content-Type", res.ContentType)
		w.Header().Set("Cache-Control", "no-cache")
		if res.ContentRange != "" {
			w.Header().Set("Content-Range", res.ContentRange)
			w.Header().Set("Accept-Ranges", "bytes")
		}
		w.WriteHeader(res.StatusCode)
		if _, err := io.Copy(w, res.Body); err != nil {
			logger.Debugf(r.Context(), "proxy stream of %q interrupted: %v", decoded, err)
		}
	}
}

func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Range, Content-Type")
	w.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Range, Content-Type")
}

// fetchFailureReason turns an upstream failure into a message safe to show a
// client. The raw error may embed the full URL, credentials included, so it
// only ever goes to the logs.
func fetchFailureReason(err error) string {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, upstream.ErrTimeout):
		return "the request timed out"
	case errors.Is(err, upstream.ErrConnection):
		return "could not connect to the remote server"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("the remote server returned HTTP %d", statusErr.StatusCode)
	default:
		return "the resource could not be fetched"
	}
}
