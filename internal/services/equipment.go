package services

import (
	"context"

	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
)

type EquipmentServiceInterface interface {
	UpdateStatus(ctx context.Context, userID uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.ActEquipmentDTO, error)
	UpdatePriority(ctx context.Context, userID uint64, payload dto.UpdateEquipmentPriorityDTO) (*dto.ActEquipmentDTO, error)
	UpdateGuarantee(ctx context.Context, userID uint64, payload dto.UpdateEquipmentGuaranteeDTO) (*dto.ActEquipmentDTO, error)
	AssignSpecialist(ctx context.Context, userID uint64, payload dto.AssignSpecialistDTO) (*dto.ActEquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRoleRepo  repositories.UserRoleRepositoryInterface
	roleService   AuthRoleServiceInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRoleRepo repositories.UserRoleRepositoryInterface,
	roleService AuthRoleServiceInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		userRoleRepo:  userRoleRepo,
		roleService:   roleService,
		logger:        logger,
	}
}

func (s *EquipmentService) requireCoordinator(ctx context.Context, userID uint64) error {
	return s.roleService.RequireAnyRole(ctx, userID, constants.RoleCoordinator, constants.RoleAdmin)
}

// UpdateStatus переводит оборудование по циклу ремонта. Разрешены только
// переходы вперёд; выданное оборудование трогать нельзя.
func (s *EquipmentService) UpdateStatus(ctx context.Context, userID uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.ActEquipmentDTO, error) {
	if err := s.requireCoordinator(ctx, userID); err != nil {
		return nil, err
	}

	newRank, ok := constants.EquipmentStatusRank(payload.Status)
	if !ok {
		return nil, apperrors.NewHttpError(400, "неизвестный статус оборудования", apperrors.ErrBadRequest, nil)
	}

	equipment, err := s.equipmentRepo.FindEquipmentByID(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.Status == constants.StatusIssued {
		return nil, apperrors.ErrEquipmentIssued
	}
	currentRank, _ := constants.EquipmentStatusRank(equipment.Status)
	if newRank <= currentRank {
		return nil, apperrors.ErrBackwardTransition
	}

	if err := s.equipmentRepo.UpdateStatus(ctx, payload.EquipmentID, payload.Status); err != nil {
		return nil, err
	}
	s.logger.Info("EquipmentService: Изменён статус оборудования",
		zap.Uint64("equipmentID", payload.EquipmentID),
		zap.String("from", equipment.Status),
		zap.String("to", payload.Status),
		zap.Uint64("userID", userID))
	return s.equipmentRepo.FindEquipmentByID(ctx, payload.EquipmentID)
}

func (s *EquipmentService) UpdatePriority(ctx context.Context, userID uint64, payload dto.UpdateEquipmentPriorityDTO) (*dto.ActEquipmentDTO, error) {
	if err := s.requireCoordinator(ctx, userID); err != nil {
		return nil, err
	}

	allowed := false
	for _, p := range constants.AllowedPriorities {
		if *payload.Priority == p {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.NewHttpError(400, "недопустимое значение приоритета", apperrors.ErrBadRequest, nil)
	}

	if err := s.equipmentRepo.UpdatePriority(ctx, payload.EquipmentID, *payload.Priority); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipmentByID(ctx, payload.EquipmentID)
}

func (s *EquipmentService) UpdateGuarantee(ctx context.Context, userID uint64, payload dto.UpdateEquipmentGuaranteeDTO) (*dto.ActEquipmentDTO, error) {
	if err := s.requireCoordinator(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.UpdateGuarantee(ctx, payload.EquipmentID, payload.GuaranteeType); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipmentByID(ctx, payload.EquipmentID)
}

// AssignSpecialist закрепляет специалиста за оборудованием в статусе
// «ожидает распределения» и переводит его в «назначено».
func (s *EquipmentService) AssignSpecialist(ctx context.Context, userID uint64, payload dto.AssignSpecialistDTO) (*dto.ActEquipmentDTO, error) {
	if err := s.requireCoordinator(ctx, userID); err != nil {
		return nil, err
	}

	userRole, err := s.userRoleRepo.FindUserRoleByID(ctx, payload.UserRoleID)
	if err != nil {
		return nil, err
	}
	if !userRole.IsActive || userRole.RoleName != constants.RoleSpecialist {
		return nil, apperrors.NewHttpError(400,
			"назначить можно только активного специалиста", apperrors.ErrBadRequest, nil)
	}

	equipment, err := s.equipmentRepo.FindEquipmentByID(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.Status != constants.StatusWaiting {
		return nil, apperrors.NewHttpError(400,
			"специалист назначается только на оборудование, ожидающее распределения", apperrors.ErrBadRequest, nil)
	}

	if err := s.equipmentRepo.AssignSpecialist(ctx, payload.EquipmentID, payload.UserRoleID); err != nil {
		return nil, err
	}
	if err := s.equipmentRepo.UpdateStatus(ctx, payload.EquipmentID, constants.StatusAssigned); err != nil {
		return nil, err
	}
	s.logger.Info("EquipmentService: Назначен специалист",
		zap.Uint64("equipmentID", payload.EquipmentID),
		zap.Uint64("userRoleID", payload.UserRoleID),
		zap.Uint64("userID", userID))
	return s.equipmentRepo.FindEquipmentByID(ctx, payload.EquipmentID)
}
