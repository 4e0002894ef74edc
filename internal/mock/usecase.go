package mock

import (
	"context"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

// MediaStreamer implements port.MediaStreamer for tests.
type MediaStreamer struct {
	Src *port.StreamSource
	Err error

	Called   bool
	Filename string
}

func (m *MediaStreamer) OpenStream(ctx context.Context, filename string) (*port.StreamSource, error) {
	m.Called = true
	m.Filename = filename
	return m.Src, m.Err
}

// PlaylistParser implements port.PlaylistParser for tests.
type PlaylistParser struct {
	Items []port.PlaylistItem
	Err   error

	Called bool
	In     port.ParsePlaylistInput
}

func (m *PlaylistParser) ParsePlaylist(ctx context.Context, in port.ParsePlaylistInput) ([]port.PlaylistItem, error) {
	m.Called = true
	m.In = in
	return m.Items, m.Err
}

// ResourceProxier implements port.ResourceProxier for tests.
type ResourceProxier struct {
	Out *port.ProxiedResource
	Err error

	Called bool
	In     port.ProxyResourceInput
}

func (m *ResourceProxier) ProxyResource(ctx context.Context, in port.ProxyResourceInput) (*port.ProxiedResource, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// PageBrowser implements port.PageBrowser for tests.
type PageBrowser struct {
	Out port.BrowseOutput
	Err error

	Called bool
	In     port.BrowseInput
}

func (m *PageBrowser) Browse(ctx context.Context, in port.BrowseInput) (port.BrowseOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MediaUploader implements port.MediaUploader for tests.
type MediaUploader struct {
	Out port.UploadMediaOutput
	Err error

	Called bool
	In     port.UploadMediaInput
}

func (m *MediaUploader) UploadMedia(ctx context.Context, in port.UploadMediaInput) (port.UploadMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// RecordingUploader implements port.RecordingUploader for tests.
type RecordingUploader struct {
	Out port.UploadMediaOutput
	Err error

	Called bool
	In     port.UploadRecordingInput
}

func (m *RecordingUploader) UploadRecording(ctx context.Context, in port.UploadRecordingInput) (port.UploadMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// SubtitleUploader implements port.SubtitleUploader for tests.
type SubtitleUploader struct {
	Out port.UploadSubtitleOutput
	Err error

	Called bool
	In     port.UploadSubtitleInput
}

func (m *SubtitleUploader) UploadSubtitle(ctx context.Context, in port.UploadSubtitleInput) (port.UploadSubtitleOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// SubtitleConverter implements port.SubtitleConverter for tests.
type SubtitleConverter struct {
	Err error

	Called bool
	ID     db.UUID
}

func (m *SubtitleConverter) ConvertSubtitle(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MetadataGetter implements port.MetadataGetter for tests.
type MetadataGetter struct {
	Out *model.Media
	Err error

	Called   bool
	Filename string
}

func (m *MetadataGetter) GetMetadata(ctx context.Context, filename string) (*model.Media, error) {
	m.Called = true
	m.Filename = filename
	return m.Out, m.Err
}

// MediaLister implements port.MediaLister for tests.
type MediaLister struct {
	Out []model.Media
	Err error

	Called bool
}

func (m *MediaLister) ListMedia(ctx context.Context) ([]model.Media, error) {
	m.Called = true
	return m.Out, m.Err
}

// MediaDeleter implements port.MediaDeleter for tests.
type MediaDeleter struct {
	Err error

	Called   bool
	Filename string
}

func (m *MediaDeleter) DeleteMedia(ctx context.Context, filename string) error {
	m.Called = true
	m.Filename = filename
	return m.Err
}

// AnalyticsRecorder implements port.AnalyticsRecorder for tests.
type AnalyticsRecorder struct {
	Err error

	Called bool
	In     port.RecordPlaybackInput
}

func (m *AnalyticsRecorder) RecordPlayback(ctx context.Context, in port.RecordPlaybackInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// Cleaner implements port.Cleaner for tests.
type Cleaner struct {
	Report port.CleanupReport
	Err    error

	Called    bool
	OlderThan time.Duration
}

func (m *Cleaner) CleanupOlderThan(ctx context.Context, olderThan time.Duration) (port.CleanupReport, error) {
	m.Called = true
	m.OlderThan = olderThan
	return m.Report, m.Err
}
