package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents one parse run over a stored file for data transfer
// between layers.
type ParseJob struct {
	ID           uuid.UUID       `json:"id"`
	FileID       uuid.UUID       `json:"file_id"`
	TankID       uuid.UUID       `json:"tank_id"`
	Format       string          `json:"format"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
	Status       *string         `json:"status,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	RawText      *string         `json:"raw_text,omitempty"`
	Pages        *int            `json:"pages,omitempty"`
	RecordsCount *int            `json:"records_count,omitempty"`
	ParsedJSON   json.RawMessage `json:"parsed_json,omitempty"`
}
