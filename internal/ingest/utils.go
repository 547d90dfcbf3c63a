package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/internal/repository"
)

// AllowedExt checks if a file extension is in the allowed set (PDF only).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// ValidateTank confirms the target tank exists before any file is stored.
func ValidateTank(ctx context.Context, tanks repository.TankRepository, tankID uuid.UUID) error {
	exists, err := tanks.Exists(ctx, tankID)
	if err != nil {
		return fmt.Errorf("check tank: %w", err)
	}
	if !exists {
		return fmt.Errorf("tank not found: %s", tankID)
	}
	return nil
}
