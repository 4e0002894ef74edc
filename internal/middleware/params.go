package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/handler/api"
)

// WithFilename extracts the {filename} route param, rejecting anything that
// could escape the storage directory.
func WithFilename() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			filename := chi.URLParam(r, "filename")
			if filename == "" {
				api.WriteError(w, http.StatusBadRequest, "filename is required", nil)
				return
			}
			if strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("filename %q is not valid", filename), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api.FilenameKey, filename)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithID extracts and parses the {id} route param.
func WithID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			parsedID, err := guuid.Parse(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api.IDKey, db.UUID(parsedID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
