package media

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type mockMediaRepo struct {
	mediaRecord *model.Media
	medias      []model.Media

	getErr    error
	createErr error
	deleteErr error
	listErr   error

	created   *model.Media
	deletedID db.UUID

	getCalled    bool
	deleteCalled bool
}

func (m *mockMediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.created = media
	return m.createErr
}
func (m *mockMediaRepo) GetByID(ctx context.Context, ID db.UUID) (*model.Media, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.mediaRecord, nil
}
func (m *mockMediaRepo) GetByFilename(ctx context.Context, filename string) (*model.Media, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.mediaRecord, nil
}
func (m *mockMediaRepo) List(ctx context.Context) ([]model.Media, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.medias, nil
}
func (m *mockMediaRepo) Delete(ctx context.Context, ID db.UUID) error {
	m.deleteCalled = true
	m.deletedID = ID
	return m.deleteErr
}
func (m *mockMediaRepo) IncrementPlayCount(ctx context.Context, ID db.UUID) error { return nil }
func (m *mockMediaRepo) AddWatchTime(ctx context.Context, ID db.UUID, seconds float64) error {
	return nil
}
func (m *mockMediaRepo) ListUploadedBefore(ctx context.Context, before time.Time) ([]model.Media, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.medias, nil
}

type mockSubRepo struct {
	subRecord *model.Subtitle
	subs      []model.Subtitle

	getErr    error
	createErr error
	updateErr error

	created         *model.Subtitle
	updatedID       db.UUID
	updatedFilename string

	deleteByMediaCalled bool
}

func (m *mockSubRepo) Create(ctx context.Context, sub *model.Subtitle) error {
	m.created = sub
	return m.createErr
}
func (m *mockSubRepo) GetByID(ctx context.Context, ID db.UUID) (*model.Subtitle, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.subRecord, nil
}
func (m *mockSubRepo) GetByFilename(ctx context.Context, filename string) (*model.Subtitle, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.subRecord, nil
}
func (m *mockSubRepo) ListByMediaID(ctx context.Context, mediaID db.UUID) ([]model.Subtitle, error) {
	return m.subs, nil
}
func (m *mockSubRepo) UpdateFilename(ctx context.Context, ID db.UUID, filename string) error {
	m.updatedID = ID
	m.updatedFilename = filename
	return m.updateErr
}
func (m *mockSubRepo) DeleteByMediaID(ctx context.Context, mediaID db.UUID) error {
	m.deleteByMediaCalled = true
	return nil
}

type nopSeekCloser struct{ *bytes.Reader }

func (nopSeekCloser) Close() error { return nil }

type mockStorage struct {
	storedName string
	content    []byte
	statInfo   port.FileInfo
	exists     bool

	saveErr   error
	saveAsErr error
	openErr   error
	statErr   error
	removeErr error

	savedName   string
	savedAsName string
	savedAsData []byte
	removed     []string

	saveCalled   bool
	saveAsCalled bool
	removeCalled bool
}

func (m *mockStorage) SaveFile(ctx context.Context, originalName string, reader io.Reader) (string, error) {
	m.saveCalled = true
	if m.saveErr != nil {
		return "", m.saveErr
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	if m.storedName != "" {
		m.savedName = m.storedName
	} else {
		m.savedName = originalName
	}
	return m.savedName, nil
}
func (m *mockStorage) SaveFileAs(ctx context.Context, name string, reader io.Reader) error {
	m.saveAsCalled = true
	if m.saveAsErr != nil {
		return m.saveAsErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.savedAsName = name
	m.savedAsData = data
	return nil
}
func (m *mockStorage) OpenFile(name string) (io.ReadSeekCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return nopSeekCloser{bytes.NewReader(m.content)}, nil
}
func (m *mockStorage) StatFile(name string) (port.FileInfo, error) {
	if m.statErr != nil {
		return port.FileInfo{}, m.statErr
	}
	return m.statInfo, nil
}
func (m *mockStorage) FileExists(name string) bool { return m.exists }
func (m *mockStorage) RemoveFile(name string) error {
	m.removeCalled = true
	m.removed = append(m.removed, name)
	return m.removeErr
}

type mockCache struct {
	deletedDetails []string
	deletedEtags   []string
}

func (m *mockCache) GetMediaDetails(ctx context.Context, filename string) ([]byte, error) {
	return nil, nil
}
func (m *mockCache) GetEtagMediaDetails(ctx context.Context, filename string) (string, error) {
	return "", nil
}
func (m *mockCache) SetMediaDetails(ctx context.Context, filename string, data []byte, ttl time.Duration) {
}
func (m *mockCache) SetEtagMediaDetails(ctx context.Context, filename string, etag string, ttl time.Duration) {
}
func (m *mockCache) DeleteMediaDetails(ctx context.Context, filename string) error {
	m.deletedDetails = append(m.deletedDetails, filename)
	return nil
}
func (m *mockCache) DeleteEtagMediaDetails(ctx context.Context, filename string) error {
	m.deletedEtags = append(m.deletedEtags, filename)
	return nil
}

type mockDispatcher struct {
	convertErr error

	convertID      db.UUID
	convertCalled  bool
	cleanupCalled  bool
	cleanupOlderBy time.Duration
}

func (m *mockDispatcher) EnqueueConvertSubtitle(ctx context.Context, id db.UUID) error {
	m.convertCalled = true
	m.convertID = id
	return m.convertErr
}
func (m *mockDispatcher) EnqueueCleanup(ctx context.Context, olderThan time.Duration) error {
	m.cleanupCalled = true
	m.cleanupOlderBy = olderThan
	return nil
}

func fixedUUIDGen(id db.UUID) port.UUIDGen {
	return func() db.UUID { return id }
}
