package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tank represents an aquarium for data transfer between layers.
type Tank struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	VolumeLiters *float64  `json:"volume_liters,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
