package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reefwatch/icp-tracker/gen/ent"
	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/repository"
)

type fakeTestsRepo struct {
	rows    map[uuid.UUID]*ent.IcpTest
	deleted []uuid.UUID
}

func (f *fakeTestsRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.IcpTest, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (f *fakeTestsRepo) ListByTank(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*ent.IcpTest, error) {
	return nil, nil
}

func (f *fakeTestsRepo) LatestByTank(context.Context, uuid.UUID) (*ent.IcpTest, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTestsRepo) CreateFromRecord(context.Context, *repository.CreateTestRequest) (*ent.IcpTest, error) {
	return nil, nil
}

func (f *fakeTestsRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return &ent.NotFoundError{}
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestsService(repo *fakeTestsRepo) *TestsService {
	return NewTestsService(repo, nil, slog.Default())
}

func TestDeleteTest(t *testing.T) {
	id := uuid.New()
	repo := &fakeTestsRepo{rows: map[uuid.UUID]*ent.IcpTest{
		id: {ID: id, TestDate: time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newTestsService(repo)

	resp, err := svc.DeleteTest(context.Background(), &icppb.DeleteTestRequest{Id: id.String()})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
	assert.Empty(t, repo.rows)
}

func TestDeleteTestNotFound(t *testing.T) {
	svc := newTestsService(&fakeTestsRepo{rows: map[uuid.UUID]*ent.IcpTest{}})

	_, err := svc.DeleteTest(context.Background(), &icppb.DeleteTestRequest{Id: uuid.New().String()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDeleteTestRejectsBadID(t *testing.T) {
	repo := &fakeTestsRepo{rows: map[uuid.UUID]*ent.IcpTest{}}
	svc := newTestsService(repo)

	_, err := svc.DeleteTest(context.Background(), &icppb.DeleteTestRequest{Id: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, repo.deleted)
}
