package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeConvertSubtitle = "subtitle:convert"
	TypeCleanupMedia    = "media:cleanup"
)

type ConvertSubtitlePayload struct {
	SubtitleID string `json:"subtitle_id"`
}

// NewConvertSubtitleTask creates an Asynq task for converting a subtitle by ID.
func NewConvertSubtitleTask(subtitleID string) (*asynq.Task, error) {
	p := ConvertSubtitlePayload{SubtitleID: subtitleID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal convert-subtitle payload: %w", err)
	}
	return asynq.NewTask(TypeConvertSubtitle, data), nil
}

// ParseConvertSubtitlePayload parses the task payload to ConvertSubtitlePayload.
func ParseConvertSubtitlePayload(t *asynq.Task) (ConvertSubtitlePayload, error) {
	var p ConvertSubtitlePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ConvertSubtitlePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

type CleanupMediaPayload struct {
	OlderThanSeconds int64 `json:"older_than_seconds"`
}

// NewCleanupMediaTask creates an Asynq task for deleting medias older than
// the given number of seconds.
func NewCleanupMediaTask(olderThanSeconds int64) (*asynq.Task, error) {
	p := CleanupMediaPayload{OlderThanSeconds: olderThanSeconds}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal cleanup-media payload: %w", err)
	}
	return asynq.NewTask(TypeCleanupMedia, data), nil
}

// ParseCleanupMediaPayload parses the task payload to CleanupMediaPayload.
func ParseCleanupMediaPayload(t *asynq.Task) (CleanupMediaPayload, error) {
	var p CleanupMediaPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return CleanupMediaPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
