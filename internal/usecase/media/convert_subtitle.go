package media

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
)

type subtitleConverterSrv struct {
	subRepo port.SubtitleRepository
	strg    port.Storage
}

// NewSubtitleConverter constructs the SRT→WebVTT conversion use case, run by
// the background worker.
func NewSubtitleConverter(subRepo port.SubtitleRepository, strg port.Storage) port.SubtitleConverter {
	return &subtitleConverterSrv{subRepo: subRepo, strg: strg}
}

func (s *subtitleConverterSrv) ConvertSubtitle(ctx context.Context, id db.UUID) error {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}
	if !strings.HasSuffix(strings.ToLower(sub.Filename), ".srt") {
		logger.Debugf(ctx, "subtitle #%s is not SRT, nothing to convert", id)
		return nil
	}

	f, err := s.strg.OpenFile(sub.Filename)
	if err != nil {
		return err
	}
	raw, err := io.ReadAll(f)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("read subtitle %q: %w", sub.Filename, err)
	}
	if closeErr != nil {
		return closeErr
	}

	vttName := strings.TrimSuffix(sub.Filename, ".srt") + ".vtt"
	converted := SRTToVTT(raw)
	if err := s.strg.SaveFileAs(ctx, vttName, bytes.NewReader(converted)); err != nil {
		return fmt.Errorf("write converted subtitle %q: %w", vttName, err)
	}

	if err := s.subRepo.UpdateFilename(ctx, sub.ID, vttName); err != nil {
		_ = s.strg.RemoveFile(vttName)
		return err
	}
	if err := s.strg.RemoveFile(sub.Filename); err != nil {
		logger.Warnf(ctx, "could not remove converted source %q: %v", sub.Filename, err)
	}

	logger.Infof(ctx, "✅  Converted subtitle #%s to %q", id, vttName)
	return nil
}

var srtTimecode = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}),(\d{3})`)

// SRTToVTT rewrites SRT text as WebVTT: a header plus dot-separated
// millisecond timecodes. Cue numbers are valid VTT identifiers and stay.
func SRTToVTT(srt []byte) []byte {
	var out bytes.Buffer
	out.WriteString("WEBVTT\n\n")

	sc := bufio.NewScanner(bytes.NewReader(srt))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.Contains(line, "-->") {
			line = srtTimecode.ReplaceAllString(line, "$1.$2")
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}
