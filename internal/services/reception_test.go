package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
)

func uintPtr(v uint64) *uint64 { return &v }

func newReceptionServiceForTest(actRepo *stubActRepo, equipmentRepo *stubEquipmentRepo, clientRepo *stubClientRepo) ReceptionServiceInterface {
	roleService := &stubRoleService{rolesByUser: map[uint64][]string{
		receiverID:    {constants.RoleReceiver},
		coordinatorID: {constants.RoleCoordinator},
	}}
	return NewReceptionService(&stubTxManager{}, actRepo, equipmentRepo, clientRepo, roleService, zap.NewNop())
}

func validClient() dto.ActClientDTO {
	return dto.ActClientDTO{
		ShortName:     "ООО Ромашка",
		FullName:      "ООО «Ромашка»",
		ContactPerson: "Иванов И.И.",
		Phone:         "+7 912 345-67-89",
	}
}

func TestReceptionService_CreateAct_NewClient(t *testing.T) {
	actRepo := &stubActRepo{}
	equipmentRepo := newStubEquipmentRepo()
	clientRepo := newStubClientRepo()
	svc := newReceptionServiceForTest(actRepo, equipmentRepo, clientRepo)

	created, err := svc.CreateReceptionAct(context.Background(), receiverID, dto.CreateReceptionActDTO{
		Client: validClient(),
		EquipmentList: []dto.EquipmentLineDTO{
			{ModelID: uintPtr(1), SerialNumber: "SN-1"},
			{ModelID: uintPtr(2)},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^ACT-\d{4}-0001$`, created.ActNumber)
	assert.Equal(t, 2, created.EquipmentCount)
	assert.Len(t, equipmentRepo.createdLines, 2)
	assert.Len(t, clientRepo.clients, 1, "новый клиент должен быть создан")
}

func TestReceptionService_CreateAct_NumberContinuesSequence(t *testing.T) {
	actRepo := &stubActRepo{existingNumbers: []string{"ACT-2025-0041", "мусор"}}
	equipmentRepo := newStubEquipmentRepo()
	clientRepo := newStubClientRepo()
	svc := newReceptionServiceForTest(actRepo, equipmentRepo, clientRepo)

	created, err := svc.CreateReceptionAct(context.Background(), receiverID, dto.CreateReceptionActDTO{
		Client:        validClient(),
		EquipmentList: []dto.EquipmentLineDTO{{ModelID: uintPtr(1)}},
	})
	require.NoError(t, err)
	// Счётчик продолжается, только если период совпадает с текущим годом.
	periodKey := created.ActNumber[:len("ACT-2025")]
	if periodKey == "ACT-2025" {
		assert.Equal(t, "ACT-2025-0042", created.ActNumber)
	} else {
		assert.Regexp(t, `-0001$`, created.ActNumber)
	}
}

func TestReceptionService_CreateAct_ExistingClientContactsUpdated(t *testing.T) {
	actRepo := &stubActRepo{}
	equipmentRepo := newStubEquipmentRepo()
	clientRepo := newStubClientRepo()
	existing, err := clientRepo.CreateClientOutsideTx(context.Background(), dto.CreateClientDTO{
		ShortName:     "ООО Ромашка",
		FullName:      "ООО «Ромашка»",
		ContactPerson: "Старый контакт",
		Phone:         "+7 900 000-00-00",
	})
	require.NoError(t, err)

	svc := newReceptionServiceForTest(actRepo, equipmentRepo, clientRepo)

	client := validClient()
	client.ID = uintPtr(existing.ID)
	created, err := svc.CreateReceptionAct(context.Background(), receiverID, dto.CreateReceptionActDTO{
		Client:        client,
		EquipmentList: []dto.EquipmentLineDTO{{ModelID: uintPtr(1)}},
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, created.ClientID)
	assert.Len(t, clientRepo.clients, 1, "второй клиент не должен создаваться")
	assert.Equal(t, "Иванов И.И.", clientRepo.clients[existing.ID].ContactPerson)
}

func TestReceptionService_CreateAct_NoEquipmentRejected(t *testing.T) {
	svc := newReceptionServiceForTest(&stubActRepo{}, newStubEquipmentRepo(), newStubClientRepo())

	// Пустой список и список из строк без модели равнозначны.
	for _, equipmentList := range [][]dto.EquipmentLineDTO{
		{},
		{{SerialNumber: "SN-1"}, {ModelID: uintPtr(0)}},
	} {
		_, err := svc.CreateReceptionAct(context.Background(), receiverID, dto.CreateReceptionActDTO{
			Client:        validClient(),
			EquipmentList: equipmentList,
		})
		assert.ErrorIs(t, err, apperrors.ErrActWithoutItems)
	}
}

func TestReceptionService_CreateAct_NewClientRequiresNames(t *testing.T) {
	clientRepo := newStubClientRepo()
	svc := newReceptionServiceForTest(&stubActRepo{}, newStubEquipmentRepo(), clientRepo)

	client := validClient()
	client.ShortName = ""
	_, err := svc.CreateReceptionAct(context.Background(), receiverID, dto.CreateReceptionActDTO{
		Client:        client,
		EquipmentList: []dto.EquipmentLineDTO{{ModelID: uintPtr(1)}},
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Empty(t, clientRepo.clients)
}

func TestReceptionService_CreateAct_RequiresReceiverRole(t *testing.T) {
	svc := newReceptionServiceForTest(&stubActRepo{}, newStubEquipmentRepo(), newStubClientRepo())

	_, err := svc.CreateReceptionAct(context.Background(), coordinatorID, dto.CreateReceptionActDTO{
		Client:        validClient(),
		EquipmentList: []dto.EquipmentLineDTO{{ModelID: uintPtr(1)}},
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestReceptionService_DeleteAct_IssuedEquipmentBlocks(t *testing.T) {
	actRepo := &stubActRepo{nextID: 1}
	equipmentRepo := newStubEquipmentRepo()
	equipmentRepo.items[1] = &dto.ActEquipmentDTO{ID: 1, ActID: 1, Status: constants.StatusIssued}
	svc := newReceptionServiceForTest(actRepo, equipmentRepo, newStubClientRepo())

	err := svc.DeleteAct(context.Background(), coordinatorID, 1)
	assert.ErrorIs(t, err, apperrors.ErrEquipmentIssued)
	assert.Empty(t, actRepo.deletedIDs)
}

func TestReceptionService_DeleteAct(t *testing.T) {
	actRepo := &stubActRepo{nextID: 1}
	equipmentRepo := newStubEquipmentRepo()
	equipmentRepo.items[1] = &dto.ActEquipmentDTO{ID: 1, ActID: 1, Status: constants.StatusReady}
	svc := newReceptionServiceForTest(actRepo, equipmentRepo, newStubClientRepo())

	require.NoError(t, svc.DeleteAct(context.Background(), coordinatorID, 1))
	assert.Equal(t, []uint64{1}, actRepo.deletedIDs)
}
