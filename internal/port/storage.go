package port

import (
	"context"
	"io"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes int64
}

// Storage defines file operations scoped to one directory of the media
// library (uploads, subtitles, vpn profiles). Stored files are immutable
// once written.
type Storage interface {
	// SaveFile writes the reader under a collision-resistant name derived
	// from originalName and returns the stored name.
	SaveFile(ctx context.Context, originalName string, reader io.Reader) (string, error)
	// SaveFileAs writes the reader under exactly the given name.
	SaveFileAs(ctx context.Context, name string, reader io.Reader) error
	// OpenFile opens a stored file for seek-capable reads.
	OpenFile(name string) (io.ReadSeekCloser, error)
	StatFile(name string) (FileInfo, error)
	FileExists(name string) bool
	RemoveFile(name string) error
}
