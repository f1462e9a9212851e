package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-hub/internal/entities"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
)

func TestAuthRoleService_RolesAreCached(t *testing.T) {
	userRepo := &stubUserRepo{
		users:     map[uint64]*entities.User{},
		roleNames: map[uint64][]string{1: {constants.RoleCoordinator}},
	}
	cache := newMemoryCache()
	svc := NewAuthRoleService(userRepo, cache, zap.NewNop(), time.Minute)

	roles, err := svc.GetUserRoleNames(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleCoordinator}, roles)
	assert.Equal(t, 1, userRepo.rolesCalled)

	// Повторный запрос обслуживается из кеша.
	roles, err = svc.GetUserRoleNames(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleCoordinator}, roles)
	assert.Equal(t, 1, userRepo.rolesCalled, "второй запрос не должен ходить в БД")
}

func TestAuthRoleService_InvalidateForcesReload(t *testing.T) {
	userRepo := &stubUserRepo{
		users:     map[uint64]*entities.User{},
		roleNames: map[uint64][]string{1: {constants.RoleReceiver}},
	}
	cache := newMemoryCache()
	svc := NewAuthRoleService(userRepo, cache, zap.NewNop(), time.Minute)

	_, err := svc.GetUserRoleNames(context.Background(), 1)
	require.NoError(t, err)

	userRepo.roleNames[1] = []string{constants.RoleReceiver, constants.RoleAdmin}
	require.NoError(t, svc.InvalidateUserRolesCache(context.Background(), 1))

	roles, err := svc.GetUserRoleNames(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleReceiver, constants.RoleAdmin}, roles)
	assert.Equal(t, 2, userRepo.rolesCalled)
}

func TestAuthRoleService_RequireAnyRole(t *testing.T) {
	userRepo := &stubUserRepo{
		users:     map[uint64]*entities.User{},
		roleNames: map[uint64][]string{1: {constants.RoleSpecialist}},
	}
	svc := NewAuthRoleService(userRepo, newMemoryCache(), zap.NewNop(), time.Minute)

	assert.NoError(t, svc.RequireAnyRole(context.Background(), 1, constants.RoleCoordinator, constants.RoleSpecialist))
	assert.ErrorIs(t, svc.RequireAnyRole(context.Background(), 1, constants.RoleAdmin), apperrors.ErrForbidden)
}
