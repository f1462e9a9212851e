package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"service-hub/internal/repositories"
	apperrors "service-hub/pkg/errors"
)

// AuthRoleServiceInterface — единая точка проверки ролей: каждая
// защищённая операция вызывает RequireRole на входе, вместо
// разрозненных запросов к user_roles по месту.
type AuthRoleServiceInterface interface {
	GetUserRoleNames(ctx context.Context, userID uint64) ([]string, error)
	HasRole(ctx context.Context, userID uint64, roleName string) (bool, error)
	HasAnyRole(ctx context.Context, userID uint64, roleNames ...string) (bool, error)
	RequireRole(ctx context.Context, userID uint64, roleName string) error
	RequireAnyRole(ctx context.Context, userID uint64, roleNames ...string) error
	InvalidateUserRolesCache(ctx context.Context, userID uint64) error
}

type AuthRoleService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewAuthRoleService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthRoleServiceInterface {
	return &AuthRoleService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func userRolesCacheKey(userID uint64) string {
	return fmt.Sprintf("auth:roles:user:%d", userID)
}

// GetUserRoleNames возвращает активные роли пользователя, сначала из
// Redis-кеша, при промахе — из БД с обратным кешированием.
func (s *AuthRoleService) GetUserRoleNames(ctx context.Context, userID uint64) ([]string, error) {
	cacheKey := userRolesCacheKey(userID)
	var roles []string

	cachedJSON, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		if err := json.Unmarshal([]byte(cachedJSON), &roles); err == nil {
			return roles, nil
		}
		s.logger.Warn("AuthRoleService: Ошибка десериализации ролей из кеша",
			zap.String("key", cacheKey), zap.Uint64("userID", userID))
	}

	roles, errDB := s.userRepo.GetActiveRoleNames(ctx, userID)
	if errDB != nil {
		s.logger.Error("AuthRoleService: Не удалось получить роли пользователя из БД",
			zap.Uint64("userID", userID), zap.Error(errDB))
		return nil, apperrors.ErrInternalServer
	}

	if rolesJSON, errMarshal := json.Marshal(roles); errMarshal == nil {
		if errSet := s.cacheRepo.Set(ctx, cacheKey, string(rolesJSON), s.cacheTTL); errSet != nil {
			s.logger.Warn("AuthRoleService: Не удалось закешировать роли пользователя",
				zap.Uint64("userID", userID), zap.Error(errSet))
		}
	}
	return roles, nil
}

func (s *AuthRoleService) HasRole(ctx context.Context, userID uint64, roleName string) (bool, error) {
	return s.HasAnyRole(ctx, userID, roleName)
}

func (s *AuthRoleService) HasAnyRole(ctx context.Context, userID uint64, roleNames ...string) (bool, error) {
	roles, err := s.GetUserRoleNames(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, have := range roles {
		for _, want := range roleNames {
			if have == want {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *AuthRoleService) RequireRole(ctx context.Context, userID uint64, roleName string) error {
	return s.RequireAnyRole(ctx, userID, roleName)
}

func (s *AuthRoleService) RequireAnyRole(ctx context.Context, userID uint64, roleNames ...string) error {
	ok, err := s.HasAnyRole(ctx, userID, roleNames...)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("AuthRoleService: Отказ в доступе",
			zap.Uint64("userID", userID), zap.Strings("required", roleNames))
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *AuthRoleService) InvalidateUserRolesCache(ctx context.Context, userID uint64) error {
	if err := s.cacheRepo.Del(ctx, userRolesCacheKey(userID)); err != nil {
		s.logger.Error("AuthRoleService: Ошибка инвалидации кеша ролей",
			zap.Uint64("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
