package model

import (
	"time"

	"github.com/julisunkan/maka/internal/db"
)

// File types a media record can carry.
const (
	FileTypeVideo    = "video"
	FileTypeAudio    = "audio"
	FileTypePlaylist = "playlist"
)

// Media is one uploaded file in the catalog. Size and mime type are fixed at
// creation; the two counters only ever grow.
type Media struct {
	ID             db.UUID   `json:"id"`
	Filename       string    `json:"filename"`
	OriginalName   string    `json:"original_name"`
	FileType       string    `json:"file_type"`
	SizeBytes      int64     `json:"size_bytes"`
	MimeType       string    `json:"mime_type"`
	UploadedAt     time.Time `json:"uploaded_at"`
	PlayCount      int64     `json:"play_count"`
	TotalWatchTime float64   `json:"total_watch_time"`
}

// Subtitle belongs to a media record and is removed with it.
type Subtitle struct {
	ID         db.UUID   `json:"id"`
	MediaID    db.UUID   `json:"media_id"`
	Filename   string    `json:"filename"`
	Language   string    `json:"language"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// VPNConfig is an uploaded OpenVPN profile. At most one is active.
type VPNConfig struct {
	ID           db.UUID   `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
	IsActive     bool      `json:"is_active"`
}
