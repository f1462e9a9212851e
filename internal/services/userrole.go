package services

import (
	"context"

	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/entities"
	"service-hub/internal/repositories"
	"service-hub/pkg/constants"
)

type UserRoleServiceInterface interface {
	GetRoles(ctx context.Context, userID uint64) ([]entities.Role, error)
	AssignRole(ctx context.Context, adminID uint64, payload dto.AssignRoleDTO) (*dto.UserRoleDTO, error)
	DeactivateUserRole(ctx context.Context, adminID uint64, payload dto.DeactivateUserRoleDTO) (*dto.UserRoleDTO, error)
}

type UserRoleService struct {
	userRoleRepo repositories.UserRoleRepositoryInterface
	roleRepo     repositories.RoleRepositoryInterface
	roleService  AuthRoleServiceInterface
	logger       *zap.Logger
}

func NewUserRoleService(
	userRoleRepo repositories.UserRoleRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	roleService AuthRoleServiceInterface,
	logger *zap.Logger,
) UserRoleServiceInterface {
	return &UserRoleService{
		userRoleRepo: userRoleRepo,
		roleRepo:     roleRepo,
		roleService:  roleService,
		logger:       logger,
	}
}

func toUserRoleDTO(ur *entities.UserRole) *dto.UserRoleDTO {
	return &dto.UserRoleDTO{
		ID:         ur.ID,
		UserID:     ur.UserID,
		RoleID:     ur.RoleID,
		RoleName:   ur.RoleName,
		IsActive:   ur.IsActive,
		AssignedAt: ur.AssignedAt,
	}
}

func (s *UserRoleService) GetRoles(ctx context.Context, userID uint64) ([]entities.Role, error) {
	if err := s.roleService.RequireRole(ctx, userID, constants.RoleAdmin); err != nil {
		return nil, err
	}
	return s.roleRepo.GetRoles(ctx)
}

// AssignRole выдаёт пользователю роль и сбрасывает его кеш ролей,
// чтобы назначение действовало сразу.
func (s *UserRoleService) AssignRole(ctx context.Context, adminID uint64, payload dto.AssignRoleDTO) (*dto.UserRoleDTO, error) {
	if err := s.roleService.RequireRole(ctx, adminID, constants.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.roleRepo.FindRoleByID(ctx, payload.RoleID); err != nil {
		return nil, err
	}

	userRole, err := s.userRoleRepo.AssignRole(ctx, payload.UserID, payload.RoleID)
	if err != nil {
		return nil, err
	}
	if err := s.roleService.InvalidateUserRolesCache(ctx, payload.UserID); err != nil {
		s.logger.Warn("UserRoleService: Кеш ролей не сброшен после назначения",
			zap.Uint64("userID", payload.UserID), zap.Error(err))
	}

	s.logger.Info("UserRoleService: Назначена роль",
		zap.Uint64("userID", userRole.UserID),
		zap.String("roleName", userRole.RoleName),
		zap.Uint64("adminID", adminID))
	return toUserRoleDTO(userRole), nil
}

func (s *UserRoleService) DeactivateUserRole(ctx context.Context, adminID uint64, payload dto.DeactivateUserRoleDTO) (*dto.UserRoleDTO, error) {
	if err := s.roleService.RequireRole(ctx, adminID, constants.RoleAdmin); err != nil {
		return nil, err
	}

	userRole, err := s.userRoleRepo.DeactivateUserRole(ctx, payload.UserRoleID)
	if err != nil {
		return nil, err
	}
	if err := s.roleService.InvalidateUserRolesCache(ctx, userRole.UserID); err != nil {
		s.logger.Warn("UserRoleService: Кеш ролей не сброшен после деактивации",
			zap.Uint64("userID", userRole.UserID), zap.Error(err))
	}

	s.logger.Info("UserRoleService: Деактивирована роль",
		zap.Uint64("userRoleID", userRole.ID),
		zap.Uint64("userID", userRole.UserID),
		zap.Uint64("adminID", adminID))
	return toUserRoleDTO(userRole), nil
}
