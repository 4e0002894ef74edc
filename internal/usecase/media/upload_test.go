package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

func TestUploadMedia_UnsupportedType(t *testing.T) {
	svc := NewMediaUploader(&mockMediaRepo{}, &mockStorage{}, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadMedia(context.Background(), port.UploadMediaInput{
		OriginalName: "notes.txt",
		Reader:       strings.NewReader("hello"),
	})
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestUploadMedia_TooLarge(t *testing.T) {
	svc := NewMediaUploader(&mockMediaRepo{}, &mockStorage{}, fixedUUIDGen(db.NewUUID()), 10)

	_, err := svc.UploadMedia(context.Background(), port.UploadMediaInput{
		OriginalName: "movie.mp4",
		SizeBytes:    11,
		Reader:       strings.NewReader("0123456789a"),
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadMedia_SaveError(t *testing.T) {
	strg := &mockStorage{saveErr: errors.New("disk full")}
	svc := NewMediaUploader(&mockMediaRepo{}, strg, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadMedia(context.Background(), port.UploadMediaInput{
		OriginalName: "movie.mp4",
		SizeBytes:    5,
		Reader:       strings.NewReader("hello"),
	})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected save error, got %v", err)
	}
}

func TestUploadMedia_CreateErrorRemovesOrphan(t *testing.T) {
	repo := &mockMediaRepo{createErr: errors.New("db fail")}
	strg := &mockStorage{storedName: "movie_20260101_120000.mp4"}
	svc := NewMediaUploader(repo, strg, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadMedia(context.Background(), port.UploadMediaInput{
		OriginalName: "movie.mp4",
		SizeBytes:    5,
		Reader:       strings.NewReader("hello"),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strg.removeCalled {
		t.Error("orphan file should have been removed")
	}
}

func TestUploadMedia_Success(t *testing.T) {
	id := db.NewUUID()
	repo := &mockMediaRepo{}
	strg := &mockStorage{storedName: "song_20260101_120000.mp3", statInfo: port.FileInfo{SizeBytes: 5}}
	svc := NewMediaUploader(repo, strg, fixedUUIDGen(id), 1024)

	out, err := svc.UploadMedia(context.Background(), port.UploadMediaInput{
		OriginalName: "song.mp3",
		SizeBytes:    5,
		Reader:       strings.NewReader("hello"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != id {
		t.Errorf("ID = %s; want %s", out.ID, id)
	}
	if out.Filename != "song_20260101_120000.mp3" {
		t.Errorf("Filename = %q", out.Filename)
	}
	if out.FileType != model.FileTypeAudio {
		t.Errorf("FileType = %q; want audio", out.FileType)
	}
	if repo.created == nil {
		t.Fatal("record should have been created")
	}
	if repo.created.SizeBytes != 5 {
		t.Errorf("SizeBytes = %d; want 5 (from stat)", repo.created.SizeBytes)
	}
	if repo.created.MimeType != "audio/mpeg" {
		t.Errorf("MimeType = %q; want audio/mpeg", repo.created.MimeType)
	}
}

func TestUploadRecording_DefaultsToVideo(t *testing.T) {
	repo := &mockMediaRepo{}
	strg := &mockStorage{statInfo: port.FileInfo{SizeBytes: 3}}
	svc := NewRecordingUploader(repo, strg, fixedUUIDGen(db.NewUUID()), 1024)

	out, err := svc.UploadRecording(context.Background(), port.UploadRecordingInput{
		RecordingType: "screen",
		SizeBytes:     3,
		Reader:        strings.NewReader("abc"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FileType != model.FileTypeVideo {
		t.Errorf("FileType = %q; want video", out.FileType)
	}
	if repo.created.MimeType != "video/webm" {
		t.Errorf("MimeType = %q; want video/webm", repo.created.MimeType)
	}
	if !strings.HasSuffix(repo.created.Filename, ".webm") {
		t.Errorf("Filename = %q; want .webm suffix", repo.created.Filename)
	}
}

func TestUploadRecording_Audio(t *testing.T) {
	repo := &mockMediaRepo{}
	strg := &mockStorage{statInfo: port.FileInfo{SizeBytes: 3}}
	svc := NewRecordingUploader(repo, strg, fixedUUIDGen(db.NewUUID()), 1024)

	out, err := svc.UploadRecording(context.Background(), port.UploadRecordingInput{
		RecordingType: "audio",
		SizeBytes:     3,
		Reader:        strings.NewReader("abc"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FileType != model.FileTypeAudio {
		t.Errorf("FileType = %q; want audio", out.FileType)
	}
	if repo.created.MimeType != "audio/webm" {
		t.Errorf("MimeType = %q; want audio/webm", repo.created.MimeType)
	}
}
