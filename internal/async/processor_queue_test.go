package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/gen/ent"
)

type countingProcessor struct {
	mu    sync.Mutex
	seen  []uuid.UUID
	block chan struct{}
}

func (c *countingProcessor) ProcessFile(_ context.Context, fileID uuid.UUID) (uuid.UUID, []*ent.IcpTest, error) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.seen = append(c.seen, fileID)
	c.mu.Unlock()
	return uuid.New(), nil, nil
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func TestQueueProcessesJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New(), SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 5, proc.count())
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// no panic, job is dropped
	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	assert.Equal(t, 0, proc.count())
}

func TestQueueShutdownTwice(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
