package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportFile represents a stored report PDF for data transfer between layers.
type ReportFile struct {
	ID          uuid.UUID `json:"id"`
	TankID      uuid.UUID `json:"tank_id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
