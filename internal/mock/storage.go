package mock

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/julisunkan/maka/internal/port"
)

type nopSeekCloser struct{ *bytes.Reader }

func (nopSeekCloser) Close() error { return nil }

// Storage implements port.Storage over an in-memory file map.
type Storage struct {
	Files map[string][]byte

	SaveErr error
	OpenErr error

	Saved   []string
	Removed []string
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) SaveFile(ctx context.Context, originalName string, reader io.Reader) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if m.Files == nil {
		m.Files = map[string][]byte{}
	}
	m.Files[originalName] = data
	m.Saved = append(m.Saved, originalName)
	return originalName, nil
}

func (m *Storage) SaveFileAs(ctx context.Context, name string, reader io.Reader) error {
	_, err := m.SaveFile(ctx, name, reader)
	return err
}

func (m *Storage) OpenFile(name string) (io.ReadSeekCloser, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	data, ok := m.Files[name]
	if !ok {
		return nil, fmt.Errorf("file %q does not exist", name)
	}
	return nopSeekCloser{bytes.NewReader(data)}, nil
}

func (m *Storage) StatFile(name string) (port.FileInfo, error) {
	data, ok := m.Files[name]
	if !ok {
		return port.FileInfo{}, fmt.Errorf("file %q does not exist", name)
	}
	return port.FileInfo{SizeBytes: int64(len(data))}, nil
}

func (m *Storage) FileExists(name string) bool {
	_, ok := m.Files[name]
	return ok
}

func (m *Storage) RemoveFile(name string) error {
	delete(m.Files, name)
	m.Removed = append(m.Removed, name)
	return nil
}
