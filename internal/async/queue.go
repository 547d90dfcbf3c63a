package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/gen/ent"
)

// Job is the smallest useful unit: one ingested file waiting for the
// extract-and-parse pipeline.
type Job struct {
	FileID      uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// FileProcessor is what the queue drives; satisfied by pipeline.Processor.
type FileProcessor interface {
	ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, []*ent.IcpTest, error)
}
