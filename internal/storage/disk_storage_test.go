package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	media "github.com/julisunkan/maka/internal/usecase/media"
)

func newTestStorage(t *testing.T) *DiskStorage {
	t.Helper()
	s, err := NewDiskStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStorage: %v", err)
	}
	return s
}

func TestSaveFile_RoundTrip(t *testing.T) {
	s := newTestStorage(t)

	name, err := s.SaveFile(context.Background(), "My Song.mp3", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if !strings.HasPrefix(name, "My_Song_") || !strings.HasSuffix(name, ".mp3") {
		t.Errorf("stored name = %q; want sanitized + timestamped .mp3", name)
	}

	f, err := s.OpenFile(name)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "audio-bytes" {
		t.Errorf("body = %q", body)
	}

	info, err := s.StatFile(name)
	if err != nil {
		t.Fatalf("StatFile: %v", err)
	}
	if info.SizeBytes != int64(len("audio-bytes")) {
		t.Errorf("SizeBytes = %d", info.SizeBytes)
	}
}

func TestSaveFile_CollisionGetsDistinctName(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.SaveFile(context.Background(), "clip.mp4", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("first SaveFile: %v", err)
	}
	second, err := s.SaveFile(context.Background(), "clip.mp4", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("second SaveFile: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct stored names, both %q", first)
	}
}

func TestOpenFile_Missing(t *testing.T) {
	s := newTestStorage(t)
	if _, err := s.OpenFile("nope.mp4"); !errors.Is(err, media.ErrObjectNotFound) {
		t.Fatalf("error = %v; want ErrObjectNotFound", err)
	}
	if _, err := s.StatFile("nope.mp4"); !errors.Is(err, media.ErrObjectNotFound) {
		t.Fatalf("stat error = %v; want ErrObjectNotFound", err)
	}
	if err := s.RemoveFile("nope.mp4"); !errors.Is(err, media.ErrObjectNotFound) {
		t.Fatalf("remove error = %v; want ErrObjectNotFound", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Song.mp3", "My_Song.mp3"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"résumé vidéo.mp4", "rsum_vido.mp4"},
		{"a;rm -rf.mp4", "arm_-rf.mp4"},
		{"...", "file"},
		{"", "file"},
	}
	for _, tc := range tests {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimestampedName(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	got := TimestampedName("My Song.mp3", now)
	if got != "My_Song_20260829_153000.mp3" {
		t.Errorf("TimestampedName = %q", got)
	}
}
