package media

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
)

const sampleSRT = "1\n00:00:01,500 --> 00:00:03,000\nHello there\n\n2\n00:01:00,250 --> 00:01:02,750\nSecond cue\n"

func TestSRTToVTT(t *testing.T) {
	got := string(SRTToVTT([]byte(sampleSRT)))

	if !strings.HasPrefix(got, "WEBVTT\n\n") {
		t.Errorf("output should start with WEBVTT header, got %q", got[:20])
	}
	if !strings.Contains(got, "00:00:01.500 --> 00:00:03.000") {
		t.Errorf("timecodes should use dots:\n%s", got)
	}
	if strings.Contains(got, ",") {
		t.Errorf("no commas should remain in timecode lines:\n%s", got)
	}
	if !strings.Contains(got, "Hello there") || !strings.Contains(got, "Second cue") {
		t.Errorf("cue text should survive:\n%s", got)
	}
}

func TestSRTToVTT_CommaInCueTextSurvives(t *testing.T) {
	srt := "1\n00:00:01,000 --> 00:00:02,000\nWell, hello\n"
	got := string(SRTToVTT([]byte(srt)))

	if !strings.Contains(got, "Well, hello") {
		t.Errorf("cue text commas must be preserved:\n%s", got)
	}
	if !strings.Contains(got, "00:00:01.000 --> 00:00:02.000") {
		t.Errorf("timecode commas must be replaced:\n%s", got)
	}
}

func TestConvertSubtitle_NotFound(t *testing.T) {
	svc := NewSubtitleConverter(&mockSubRepo{getErr: sql.ErrNoRows}, &mockStorage{})

	err := svc.ConvertSubtitle(context.Background(), db.NewUUID())
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestConvertSubtitle_NonSRTIsNoop(t *testing.T) {
	subRepo := &mockSubRepo{subRecord: &model.Subtitle{ID: db.NewUUID(), Filename: "subs.vtt"}}
	strg := &mockStorage{}
	svc := NewSubtitleConverter(subRepo, strg)

	if err := svc.ConvertSubtitle(context.Background(), subRepo.subRecord.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strg.saveAsCalled {
		t.Error("nothing should be written for a VTT subtitle")
	}
}

func TestConvertSubtitle_Success(t *testing.T) {
	id := db.NewUUID()
	subRepo := &mockSubRepo{subRecord: &model.Subtitle{ID: id, Filename: "subs_x.srt"}}
	strg := &mockStorage{content: []byte(sampleSRT)}
	svc := NewSubtitleConverter(subRepo, strg)

	if err := svc.ConvertSubtitle(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strg.savedAsName != "subs_x.vtt" {
		t.Errorf("converted name = %q; want subs_x.vtt", strg.savedAsName)
	}
	if !strings.HasPrefix(string(strg.savedAsData), "WEBVTT\n\n") {
		t.Error("converted content should be WebVTT")
	}
	if subRepo.updatedFilename != "subs_x.vtt" {
		t.Errorf("record should point at the VTT file, got %q", subRepo.updatedFilename)
	}
	if len(strg.removed) != 1 || strg.removed[0] != "subs_x.srt" {
		t.Errorf("SRT source should be removed, removed = %v", strg.removed)
	}
}

func TestConvertSubtitle_UpdateErrorRemovesVTT(t *testing.T) {
	id := db.NewUUID()
	subRepo := &mockSubRepo{
		subRecord: &model.Subtitle{ID: id, Filename: "subs_x.srt"},
		updateErr: errors.New("db fail"),
	}
	strg := &mockStorage{content: []byte(sampleSRT)}
	svc := NewSubtitleConverter(subRepo, strg)

	if err := svc.ConvertSubtitle(context.Background(), id); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(strg.removed) != 1 || strg.removed[0] != "subs_x.vtt" {
		t.Errorf("half-written VTT should be removed, removed = %v", strg.removed)
	}
}
