package api

import (
	"context"

	"github.com/julisunkan/maka/internal/db"
)

type ctxKey string

const (
	IDKey       ctxKey = "id"
	FilenameKey ctxKey = "filename"
)

func IDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(IDKey).(db.UUID)
	return id, ok
}

func FilenameFromContext(ctx context.Context) (string, bool) {
	filename, ok := ctx.Value(FilenameKey).(string)
	return filename, ok
}
