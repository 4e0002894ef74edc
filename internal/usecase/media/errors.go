package media

import "errors"

var (
	ErrObjectNotFound      = errors.New("media: object not found")
	ErrUnsupportedFileType = errors.New("media: file type not allowed")
	ErrFileTooLarge        = errors.New("media: file too large")
)
