package server

import (
	"context"
	"log/slog"
	"strings"

	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/common"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

const (
	maxTankNameLen        = 120
	maxTankDescriptionLen = 500
)

type TanksService struct {
	icppb.UnimplementedTanksServiceServer
	tanksRepo repository.TankRepository
	logger    *slog.Logger
}

func NewTanksService(tanksRepo repository.TankRepository, logger *slog.Logger) *TanksService {
	return &TanksService{
		tanksRepo: tanksRepo,
		logger:    logger,
	}
}

// CreateTank registers a new aquarium.
func (s *TanksService) CreateTank(ctx context.Context, req *icppb.CreateTankRequest) (*icppb.CreateTankResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required, common.MaxLength(maxTankNameLen)).
		Field("description", req.GetDescription(), common.MaxLength(maxTankDescriptionLen))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	tank := &repository.Tank{Name: strings.TrimSpace(req.GetName())}
	if vol := req.GetVolumeLiters(); vol > 0 {
		tank.VolumeLiters = &vol
	}
	if desc := strings.TrimSpace(req.GetDescription()); desc != "" {
		tank.Description = &desc
	}

	row, err := s.tanksRepo.CreateTank(ctx, tank)
	if err != nil {
		s.logger.Error("failed to create tank", "name", tank.Name, "error", err)
		return nil, common.InternalErrorf("create tank: %v", err)
	}

	s.logger.Info("tank created", "tank_id", row.ID, "name", row.Name)
	return &icppb.CreateTankResponse{Tank: utils.ToPBTank(utils.ToTank(row))}, nil
}

// ListTanks lists all registered aquariums.
func (s *TanksService) ListTanks(ctx context.Context, _ *icppb.ListTanksRequest) (*icppb.ListTanksResponse, error) {
	tanks, err := s.tanksRepo.ListTanks(ctx)
	if err != nil {
		s.logger.Error("failed to list tanks", "error", err)
		return nil, common.InternalErrorf("list tanks: %v", err)
	}

	out := make([]*icppb.Tank, 0, len(tanks))
	for _, t := range tanks {
		out = append(out, utils.ToPBTank(t))
	}
	return &icppb.ListTanksResponse{Tanks: out}, nil
}
