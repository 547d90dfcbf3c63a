package server

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reefwatch/icp-tracker/gen/ent"
	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/entity"
	"github.com/reefwatch/icp-tracker/internal/repository"
)

type fakeTanksRepo struct {
	created []*repository.Tank
}

func (f *fakeTanksRepo) GetByID(context.Context, uuid.UUID) (*ent.Tank, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTanksRepo) GetByName(context.Context, string) (*ent.Tank, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTanksRepo) CreateTank(_ context.Context, tank *repository.Tank) (*ent.Tank, error) {
	f.created = append(f.created, tank)
	return &ent.Tank{
		ID:        uuid.New(),
		Name:      tank.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

func (f *fakeTanksRepo) GetOrCreateByName(ctx context.Context, name string) (*ent.Tank, error) {
	return f.CreateTank(ctx, &repository.Tank{Name: name})
}

func (f *fakeTanksRepo) ListTanks(context.Context) ([]*entity.Tank, error) {
	return nil, nil
}

func (f *fakeTanksRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func TestCreateTank(t *testing.T) {
	repo := &fakeTanksRepo{}
	svc := NewTanksService(repo, slog.Default())

	resp, err := svc.CreateTank(context.Background(), &icppb.CreateTankRequest{Name: "  Display Tank  "})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Display Tank", repo.created[0].Name)
	assert.Equal(t, "Display Tank", resp.GetTank().GetName())
}

func TestCreateTankRejectsOverlongFields(t *testing.T) {
	repo := &fakeTanksRepo{}
	svc := NewTanksService(repo, slog.Default())

	_, err := svc.CreateTank(context.Background(), &icppb.CreateTankRequest{
		Name: strings.Repeat("x", maxTankNameLen+1),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateTank(context.Background(), &icppb.CreateTankRequest{
		Name:        "Frag Tank",
		Description: strings.Repeat("x", maxTankDescriptionLen+1),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	assert.Empty(t, repo.created)
}
