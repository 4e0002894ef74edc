package media

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

func TestUploadSubtitle_BadExtension(t *testing.T) {
	svc := NewSubtitleUploader(&mockMediaRepo{}, &mockSubRepo{}, &mockStorage{}, &mockDispatcher{}, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadSubtitle(context.Background(), port.UploadSubtitleInput{
		MediaID:      db.NewUUID(),
		OriginalName: "subs.sub",
		Reader:       strings.NewReader("x"),
	})
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestUploadSubtitle_TooLarge(t *testing.T) {
	svc := NewSubtitleUploader(&mockMediaRepo{}, &mockSubRepo{}, &mockStorage{}, &mockDispatcher{}, fixedUUIDGen(db.NewUUID()), 4)

	_, err := svc.UploadSubtitle(context.Background(), port.UploadSubtitleInput{
		MediaID:      db.NewUUID(),
		OriginalName: "subs.srt",
		SizeBytes:    5,
		Reader:       strings.NewReader("12345"),
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadSubtitle_MediaNotFound(t *testing.T) {
	repo := &mockMediaRepo{getErr: sql.ErrNoRows}
	svc := NewSubtitleUploader(repo, &mockSubRepo{}, &mockStorage{}, &mockDispatcher{}, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadSubtitle(context.Background(), port.UploadSubtitleInput{
		MediaID:      db.NewUUID(),
		OriginalName: "subs.srt",
		Reader:       strings.NewReader("x"),
	})
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestUploadSubtitle_SRTEnqueuesConversion(t *testing.T) {
	subID := db.NewUUID()
	repo := &mockMediaRepo{mediaRecord: &model.Media{ID: db.NewUUID()}}
	subRepo := &mockSubRepo{}
	strg := &mockStorage{storedName: "subs_20260101_120000.srt"}
	disp := &mockDispatcher{}
	svc := NewSubtitleUploader(repo, subRepo, strg, disp, fixedUUIDGen(subID), 1024)

	out, err := svc.UploadSubtitle(context.Background(), port.UploadSubtitleInput{
		MediaID:      db.NewUUID(),
		Language:     "en",
		OriginalName: "subs.srt",
		Reader:       strings.NewReader("1\n00:00:01,000 --> 00:00:02,000\nhi\n"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Filename != "subs_20260101_120000.srt" {
		t.Errorf("Filename = %q", out.Filename)
	}
	if !disp.convertCalled {
		t.Error("conversion task should have been enqueued for an SRT upload")
	}
	if disp.convertID != subID {
		t.Errorf("enqueued ID = %s; want %s", disp.convertID, subID)
	}
	if subRepo.created == nil || subRepo.created.Language != "en" {
		t.Errorf("created record = %+v; want language en", subRepo.created)
	}
}

func TestUploadSubtitle_VTTSkipsConversion(t *testing.T) {
	repo := &mockMediaRepo{mediaRecord: &model.Media{ID: db.NewUUID()}}
	disp := &mockDispatcher{}
	svc := NewSubtitleUploader(repo, &mockSubRepo{}, &mockStorage{}, disp, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadSubtitle(context.Background(), port.UploadSubtitleInput{
		MediaID:      db.NewUUID(),
		OriginalName: "subs.vtt",
		Reader:       strings.NewReader("WEBVTT\n"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if disp.convertCalled {
		t.Error("VTT upload should not enqueue a conversion")
	}
}

func TestUploadSubtitle_CreateErrorRemovesOrphan(t *testing.T) {
	repo := &mockMediaRepo{mediaRecord: &model.Media{ID: db.NewUUID()}}
	subRepo := &mockSubRepo{createErr: errors.New("db fail")}
	strg := &mockStorage{}
	svc := NewSubtitleUploader(repo, subRepo, strg, &mockDispatcher{}, fixedUUIDGen(db.NewUUID()), 1024)

	_, err := svc.UploadSubtitle(context.Background(), port.UploadSubtitleInput{
		MediaID:      db.NewUUID(),
		OriginalName: "subs.vtt",
		Reader:       strings.NewReader("WEBVTT\n"),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strg.removeCalled {
		t.Error("orphan subtitle file should have been removed")
	}
}
