package media

import (
	"path/filepath"
	"strings"

	"github.com/julisunkan/maka/internal/model"
)

var videoExtensions = map[string]struct{}{
	"mp4": {}, "avi": {}, "mkv": {}, "mov": {}, "wmv": {}, "flv": {},
	"webm": {}, "ogv": {}, "m4v": {}, "mpeg": {}, "mpg": {}, "3gp": {},
}

var audioExtensions = map[string]struct{}{
	"mp3": {}, "wav": {}, "ogg": {}, "flac": {}, "aac": {}, "m4a": {},
	"wma": {}, "opus": {},
}

var playlistExtensions = map[string]struct{}{
	"m3u": {}, "m3u8": {},
}

var subtitleExtensions = map[string]struct{}{
	"srt": {}, "vtt": {},
}

// mimeTypes is our own table rather than the host's mime database, so stored
// content types do not depend on the machine the upload happened on.
var mimeTypes = map[string]string{
	"mp4": "video/mp4", "avi": "video/x-msvideo", "mkv": "video/x-matroska",
	"mov": "video/quicktime", "wmv": "video/x-ms-wmv", "flv": "video/x-flv",
	"webm": "video/webm", "ogv": "video/ogg", "m4v": "video/x-m4v",
	"mpeg": "video/mpeg", "mpg": "video/mpeg", "3gp": "video/3gpp",
	"ts": "video/mp2t",

	"mp3": "audio/mpeg", "wav": "audio/wav", "ogg": "audio/ogg",
	"flac": "audio/flac", "aac": "audio/aac", "m4a": "audio/mp4",
	"wma": "audio/x-ms-wma", "opus": "audio/opus",

	"m3u": "application/vnd.apple.mpegurl", "m3u8": "application/vnd.apple.mpegurl",

	"srt": "application/x-subrip", "vtt": "text/vtt",
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// FileTypeForName classifies an upload by extension. The second return is
// false when the extension is not allowed at all.
func FileTypeForName(name string) (string, bool) {
	ext := extension(name)
	switch {
	case hasKey(videoExtensions, ext):
		return model.FileTypeVideo, true
	case hasKey(audioExtensions, ext):
		return model.FileTypeAudio, true
	case hasKey(playlistExtensions, ext):
		return model.FileTypePlaylist, true
	default:
		return "", false
	}
}

// IsSubtitleName reports whether the name carries a subtitle extension.
func IsSubtitleName(name string) bool {
	return hasKey(subtitleExtensions, extension(name))
}

// MimeTypeForName returns the content type for a stored name, defaulting to
// application/octet-stream.
func MimeTypeForName(name string) string {
	if mt, ok := mimeTypes[extension(name)]; ok {
		return mt
	}
	return "application/octet-stream"
}

func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
