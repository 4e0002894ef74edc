package port

import (
	"context"
	"io"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
)

type UUIDGen func() db.UUID

// MediaStreamer resolves a stored filename to a seekable byte source.
type MediaStreamer interface {
	OpenStream(ctx context.Context, filename string) (*StreamSource, error)
}
type StreamSource struct {
	Reader    io.ReadSeekCloser
	SizeBytes int64
	MimeType  string
}

// PlaylistParser fetches a remote playlist and materialises its entries.
type PlaylistParser interface {
	ParsePlaylist(ctx context.Context, in ParsePlaylistInput) ([]PlaylistItem, error)
}
type ParsePlaylistInput struct {
	URL    string
	UseVPN bool
}
type PlaylistItem struct {
	URI      string   `json:"uri"`
	Title    string   `json:"title"`
	Duration *float64 `json:"duration"`
}

// ResourceProxier fetches a remote resource, rewriting manifests so every
// reference routes back through the proxy.
type ResourceProxier interface {
	ProxyResource(ctx context.Context, in ProxyResourceInput) (*ProxiedResource, error)
}
type ProxyResourceInput struct {
	URL         string
	RangeHeader string
}
type ProxiedResource struct {
	Body         io.ReadCloser
	StatusCode   int
	ContentType  string
	ContentRange string
}

// PageBrowser fetches an arbitrary page on behalf of the client.
type PageBrowser interface {
	Browse(ctx context.Context, in BrowseInput) (BrowseOutput, error)
}
type BrowseInput struct {
	URL       string
	UseVPN    bool
	UserAgent string
}
type BrowseOutput struct {
	Content     string `json:"content"`
	FinalURL    string `json:"final_url"`
	ContentType string `json:"content_type"`
	StatusCode  int    `json:"status_code"`
	IsMedia     bool   `json:"is_media"`
	Title       string `json:"title,omitempty"`
}

// MediaUploader stores an uploaded file and creates its catalog record.
type MediaUploader interface {
	UploadMedia(ctx context.Context, in UploadMediaInput) (UploadMediaOutput, error)
}
type UploadMediaInput struct {
	OriginalName string
	SizeBytes    int64
	Reader       io.Reader
}
type UploadMediaOutput struct {
	ID       db.UUID `json:"media_id"`
	Filename string  `json:"filename"`
	FileType string  `json:"file_type"`
}

// RecordingUploader stores a browser recording as a webm media.
type RecordingUploader interface {
	UploadRecording(ctx context.Context, in UploadRecordingInput) (UploadMediaOutput, error)
}
type UploadRecordingInput struct {
	RecordingType string
	SizeBytes     int64
	Reader        io.Reader
}

// SubtitleUploader stores a subtitle file for an existing media.
type SubtitleUploader interface {
	UploadSubtitle(ctx context.Context, in UploadSubtitleInput) (UploadSubtitleOutput, error)
}
type UploadSubtitleInput struct {
	MediaID      db.UUID
	Language     string
	OriginalName string
	SizeBytes    int64
	Reader       io.Reader
}
type UploadSubtitleOutput struct {
	ID       db.UUID `json:"subtitle_id"`
	Filename string  `json:"filename"`
}

// SubtitleConverter rewrites an SRT subtitle as WebVTT next to it.
type SubtitleConverter interface {
	ConvertSubtitle(ctx context.Context, id db.UUID) error
}

// MetadataGetter returns the catalog record for a stored filename.
type MetadataGetter interface {
	GetMetadata(ctx context.Context, filename string) (*model.Media, error)
}

// MediaLister returns the catalog ordered by upload date, newest first.
type MediaLister interface {
	ListMedia(ctx context.Context) ([]model.Media, error)
}

// MediaDeleter removes a media, its subtitles and analytics.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, filename string) error
}

// AnalyticsRecorder applies a playback event to the catalog counters and
// appends it to the event log.
type AnalyticsRecorder interface {
	RecordPlayback(ctx context.Context, in RecordPlaybackInput) error
}
type RecordPlaybackInput struct {
	Filename  string
	EventType string
	WatchTime float64
	Payload   model.Payload
}

// Cleaner deletes medias older than the cutoff, files included.
type Cleaner interface {
	CleanupOlderThan(ctx context.Context, olderThan time.Duration) (CleanupReport, error)
}
type CleanupReport struct {
	DeletedCount int   `json:"deleted_count"`
	FreedBytes   int64 `json:"freed_bytes"`
}

// HTTPRenderer mediates between HTTP handlers and the metadata getter,
// adding caching and ETag derivation.
type HTTPRenderer interface {
	RenderGetMetadata(ctx context.Context, getter MetadataGetter, filename string) ([]byte, string, error)
}
