package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/usecase/media"
	"github.com/julisunkan/maka/internal/usecase/stream"
)

// StreamMediaHandler serves a stored file with byte-range support. Streamed
// media is never cacheable: files are ephemeral and may be cleaned up between
// sessions.
func StreamMediaHandler(svc port.MediaStreamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, ok := FilenameFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "filename is required", nil)
			return
		}

		src, err := svc.OpenStream(r.Context(), filename)
		if err != nil {
			if errors.Is(err, media.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, fmt.Sprintf("media %q not found", filename), err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not open media %q", filename), err)
			return
		}
		defer func() {
			if err := src.Reader.Close(); err != nil {
				logger.Warnf(r.Context(), "could not close media %q: %v", filename, err)
			}
		}()

		w.Header().Set("Content-Type", src.MimeType)
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		rangeHeader := r.Header.Get("Range")
		if rangeHeader == "" {
			w.Header().Set("Content-Length", strconv.FormatInt(src.SizeBytes, 10))
			w.WriteHeader(http.StatusOK)
			if _, err := io.Copy(w, src.Reader); err != nil {
				logger.Debugf(r.Context(), "stream of %q interrupted: %v", filename, err)
			}
			return
		}

		br, err := stream.ParseRange(rangeHeader, src.SizeBytes)
		if err != nil {
			logger.Warnf(r.Context(), "range %q not satisfiable for %q (size %d)", rangeHeader, filename, src.SizeBytes)
			// a 416 carries only the unsatisfied-range marker, no body
			w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", src.SizeBytes))
			w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
			return
		}

		if _, err := src.Reader.Seek(br.Start, io.SeekStart); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not seek media %q", filename), err)
			return
		}

		// status and headers are final before the first body byte
		w.Header().Set("Content-Range", br.ContentRange(src.SizeBytes))
		w.Header().Set("Content-Length", strconv.FormatInt(br.Length(), 10))
		w.WriteHeader(http.StatusPartialContent)
		if _, err := io.CopyN(w, src.Reader, br.Length()); err != nil {
			logger.Debugf(r.Context(), "range stream of %q interrupted: %v", filename, err)
		}
	}
}
