package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/gen/ent"
	enttank "github.com/reefwatch/icp-tracker/gen/ent/tank"
	"github.com/reefwatch/icp-tracker/internal/entity"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

type Tank struct {
	Name         string
	VolumeLiters *float64
	Description  *string
}

type TankRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Tank, error)
	GetByName(ctx context.Context, name string) (*ent.Tank, error)
	CreateTank(ctx context.Context, tank *Tank) (*ent.Tank, error)
	GetOrCreateByName(ctx context.Context, name string) (*ent.Tank, error)
	ListTanks(ctx context.Context) ([]*entity.Tank, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type tankRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTankRepository(client *ent.Client, logger *slog.Logger) TankRepository {
	return &tankRepository{
		client: client,
		logger: logger,
	}
}

func (r *tankRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Tank, error) {
	return r.client.Tank.
		Query().
		Where(enttank.ID(id)).
		Only(ctx)
}

func (r *tankRepository) GetByName(ctx context.Context, name string) (*ent.Tank, error) {
	return r.client.Tank.
		Query().
		Where(enttank.Name(name)).
		Only(ctx)
}

func (r *tankRepository) CreateTank(ctx context.Context, tank *Tank) (*ent.Tank, error) {
	t, err := r.client.Tank.Create().
		SetName(tank.Name).
		SetNillableVolumeLiters(tank.VolumeLiters).
		SetNillableDescription(tank.Description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create tank", "name", tank.Name, "error", err)
		return nil, err
	}
	return t, nil
}

func (r *tankRepository) GetOrCreateByName(ctx context.Context, name string) (*ent.Tank, error) {
	t, err := r.GetByName(ctx, name)
	if err == nil {
		return t, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up tank by name", "name", name, "error", err)
		return nil, err
	}
	return r.CreateTank(ctx, &Tank{Name: name})
}

func (r *tankRepository) ListTanks(ctx context.Context) ([]*entity.Tank, error) {
	tanks, err := r.client.Tank.Query().Order(enttank.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list tanks", "error", err)
		return nil, err
	}
	result := make([]*entity.Tank, len(tanks))
	for i, t := range tanks {
		result[i] = utils.ToTank(t)
	}
	return result, nil
}

func (r *tankRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Tank.Query().Where(enttank.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check tank existence", "tank_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
