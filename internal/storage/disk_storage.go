package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/julisunkan/maka/internal/port"
	media "github.com/julisunkan/maka/internal/usecase/media"
)

// DiskStorage stores files flat inside one root directory. Media files are
// immutable once written, which is what makes lock-free concurrent range
// reads safe.
type DiskStorage struct {
	root string
}

// compile-time check: *DiskStorage must satisfy port.Storage
var _ port.Storage = (*DiskStorage)(nil)

// NewDiskStorage creates the root directory if needed.
func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", root, err)
	}
	return &DiskStorage{root: root}, nil
}

// SaveFile stores the reader under a sanitized, timestamp-suffixed name
// derived from originalName and returns the stored name.
func (s *DiskStorage) SaveFile(ctx context.Context, originalName string, reader io.Reader) (string, error) {
	now := time.Now()
	name := TimestampedName(originalName, now)
	err := s.save(ctx, name, reader, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
	if errors.Is(err, os.ErrExist) {
		// Same name uploaded twice within a second; disambiguate and retry once.
		ext := filepath.Ext(name)
		name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), now.Nanosecond(), ext)
		err = s.save(ctx, name, reader, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// SaveFileAs stores the reader under exactly the given name, replacing any
// previous content.
func (s *DiskStorage) SaveFileAs(ctx context.Context, name string, reader io.Reader) error {
	return s.save(ctx, name, reader, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

func (s *DiskStorage) save(ctx context.Context, name string, reader io.Reader, flags int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.path(name)
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %q: %w", name, err)
	}
	return f.Close()
}

// OpenFile opens a stored file for seek-capable reads. Each caller gets its
// own handle at its own offset.
func (s *DiskStorage) OpenFile(name string) (io.ReadSeekCloser, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, media.ErrObjectNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *DiskStorage) StatFile(name string) (port.FileInfo, error) {
	info, err := os.Stat(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return port.FileInfo{}, media.ErrObjectNotFound
		}
		return port.FileInfo{}, err
	}
	return port.FileInfo{SizeBytes: info.Size()}, nil
}

func (s *DiskStorage) FileExists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

func (s *DiskStorage) RemoveFile(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return media.ErrObjectNotFound
	}
	return err
}

// path confines name to the storage root; stored names are always flat.
func (s *DiskStorage) path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

// SanitizeFilename strips everything that is not a letter, digit, dot, dash
// or underscore, so a stored name can never escape its directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}

// TimestampedName appends a second-resolution timestamp before the extension:
// "My Song.mp3" → "My_Song_20260829_153000.mp3".
func TimestampedName(originalName string, now time.Time) string {
	name := SanitizeFilename(originalName)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%s%s", base, now.Format("20060102_150405"), ext)
}
