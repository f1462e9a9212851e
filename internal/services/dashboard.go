package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	"service-hub/pkg/constants"
)

// Акты на дашборде приёмщика показываются за последние трое суток.
const recentActsWindow = 3 * 24 * time.Hour

type DashboardServiceInterface interface {
	GetReceiverDashboard(ctx context.Context, userID uint64) (*dto.ReceiverDashboardDTO, error)
	GetCoordinatorDashboard(ctx context.Context, userID uint64) ([]dto.CoordinatorItemDTO, error)
}

type DashboardService struct {
	actRepo       repositories.ActRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	roleService   AuthRoleServiceInterface
	logger        *zap.Logger
}

func NewDashboardService(
	actRepo repositories.ActRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	roleService AuthRoleServiceInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		actRepo:       actRepo,
		equipmentRepo: equipmentRepo,
		roleService:   roleService,
		logger:        logger,
	}
}

// GetReceiverDashboard — рабочий экран приёмщика: оборудование, готовое
// к выдаче, и свежие акты приёмки.
func (s *DashboardService) GetReceiverDashboard(ctx context.Context, userID uint64) (*dto.ReceiverDashboardDTO, error) {
	if err := s.roleService.RequireAnyRole(ctx, userID, constants.RoleReceiver, constants.RoleAdmin); err != nil {
		return nil, err
	}

	readyEquipment, err := s.equipmentRepo.GetEquipmentByStatus(ctx, constants.StatusReady)
	if err != nil {
		s.logger.Error("DashboardService: Ошибка выборки готового оборудования", zap.Error(err))
		return nil, err
	}

	recentActs, err := s.actRepo.GetRecentActs(ctx, time.Now().Add(-recentActsWindow))
	if err != nil {
		s.logger.Error("DashboardService: Ошибка выборки недавних актов", zap.Error(err))
		return nil, err
	}

	return &dto.ReceiverDashboardDTO{
		ReadyEquipment: readyEquipment,
		RecentActs:     recentActs,
	}, nil
}

// GetCoordinatorDashboard — очередь координатора: всё невыданное
// оборудование, от самого залежавшегося к свежему.
func (s *DashboardService) GetCoordinatorDashboard(ctx context.Context, userID uint64) ([]dto.CoordinatorItemDTO, error) {
	if err := s.roleService.RequireAnyRole(ctx, userID, constants.RoleCoordinator, constants.RoleAdmin); err != nil {
		return nil, err
	}
	return s.equipmentRepo.GetEquipmentInService(ctx)
}
