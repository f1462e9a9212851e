package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/entities"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
)

const (
	coordinatorID = uint64(10)
	receiverID    = uint64(20)
)

func newEquipmentServiceForTest(equipmentRepo *stubEquipmentRepo, userRoleRepo *stubUserRoleRepo) EquipmentServiceInterface {
	roleService := &stubRoleService{rolesByUser: map[uint64][]string{
		coordinatorID: {constants.RoleCoordinator},
		receiverID:    {constants.RoleReceiver},
	}}
	return NewEquipmentService(equipmentRepo, userRoleRepo, roleService, zap.NewNop())
}

func intPtr(v int) *int { return &v }

func TestEquipmentService_UpdateStatus_Forward(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusDiagnosis}
	svc := newEquipmentServiceForTest(repo, &stubUserRoleRepo{})

	updated, err := svc.UpdateStatus(context.Background(), coordinatorID, dto.UpdateEquipmentStatusDTO{
		EquipmentID: 1,
		Status:      constants.StatusRepair,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRepair, updated.Status)
}

func TestEquipmentService_UpdateStatus_BackwardRejected(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusRepair}
	svc := newEquipmentServiceForTest(repo, &stubUserRoleRepo{})

	testCases := []string{
		constants.StatusDiagnosis, // назад
		constants.StatusRepair,    // тот же статус
	}
	for _, target := range testCases {
		_, err := svc.UpdateStatus(context.Background(), coordinatorID, dto.UpdateEquipmentStatusDTO{
			EquipmentID: 1,
			Status:      target,
		})
		assert.ErrorIs(t, err, apperrors.ErrBackwardTransition, "переход в %s должен быть отклонён", target)
	}
	assert.Empty(t, repo.statusUpdates)
}

func TestEquipmentService_UpdateStatus_IssuedIsTerminal(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusIssued}
	svc := newEquipmentServiceForTest(repo, &stubUserRoleRepo{})

	_, err := svc.UpdateStatus(context.Background(), coordinatorID, dto.UpdateEquipmentStatusDTO{
		EquipmentID: 1,
		Status:      constants.StatusReady,
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentIssued)
}

func TestEquipmentService_UpdateStatus_UnknownStatus(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusWaiting}
	svc := newEquipmentServiceForTest(repo, &stubUserRoleRepo{})

	_, err := svc.UpdateStatus(context.Background(), coordinatorID, dto.UpdateEquipmentStatusDTO{
		EquipmentID: 1,
		Status:      "SCRAPPED",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestEquipmentService_UpdateStatus_RequiresCoordinator(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusWaiting}
	svc := newEquipmentServiceForTest(repo, &stubUserRoleRepo{})

	_, err := svc.UpdateStatus(context.Background(), receiverID, dto.UpdateEquipmentStatusDTO{
		EquipmentID: 1,
		Status:      constants.StatusAssigned,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestEquipmentService_UpdatePriority(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusWaiting}
	svc := newEquipmentServiceForTest(repo, &stubUserRoleRepo{})

	for _, priority := range constants.AllowedPriorities {
		updated, err := svc.UpdatePriority(context.Background(), coordinatorID, dto.UpdateEquipmentPriorityDTO{
			EquipmentID: 1,
			Priority:    intPtr(priority),
		})
		require.NoError(t, err, "приоритет %d должен быть разрешён", priority)
		assert.Equal(t, priority, updated.Priority)
	}

	_, err := svc.UpdatePriority(context.Background(), coordinatorID, dto.UpdateEquipmentPriorityDTO{
		EquipmentID: 1,
		Priority:    intPtr(2),
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestEquipmentService_AssignSpecialist(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusWaiting}
	userRoleRepo := &stubUserRoleRepo{userRoles: map[uint64]*entities.UserRole{
		5: {ID: 5, UserID: 30, RoleName: constants.RoleSpecialist, IsActive: true},
	}}
	svc := newEquipmentServiceForTest(repo, userRoleRepo)

	updated, err := svc.AssignSpecialist(context.Background(), coordinatorID, dto.AssignSpecialistDTO{
		EquipmentID: 1,
		UserRoleID:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusAssigned, updated.Status)
	require.NotNil(t, updated.SpecialistID)
	assert.Equal(t, uint64(5), *updated.SpecialistID)
}

func TestEquipmentService_AssignSpecialist_Rejections(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.items[1] = &dto.ActEquipmentDTO{ID: 1, Status: constants.StatusWaiting}
	repo.items[2] = &dto.ActEquipmentDTO{ID: 2, Status: constants.StatusRepair}
	userRoleRepo := &stubUserRoleRepo{userRoles: map[uint64]*entities.UserRole{
		5: {ID: 5, UserID: 30, RoleName: constants.RoleSpecialist, IsActive: true},
		6: {ID: 6, UserID: 31, RoleName: constants.RoleReceiver, IsActive: true},
		7: {ID: 7, UserID: 32, RoleName: constants.RoleSpecialist, IsActive: false},
	}}
	svc := newEquipmentServiceForTest(repo, userRoleRepo)

	// Не специалист.
	_, err := svc.AssignSpecialist(context.Background(), coordinatorID, dto.AssignSpecialistDTO{EquipmentID: 1, UserRoleID: 6})
	assert.Error(t, err)

	// Деактивированная роль.
	_, err = svc.AssignSpecialist(context.Background(), coordinatorID, dto.AssignSpecialistDTO{EquipmentID: 1, UserRoleID: 7})
	assert.Error(t, err)

	// Оборудование уже в работе.
	_, err = svc.AssignSpecialist(context.Background(), coordinatorID, dto.AssignSpecialistDTO{EquipmentID: 2, UserRoleID: 5})
	assert.Error(t, err)
}
