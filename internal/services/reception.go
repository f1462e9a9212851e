package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
)

type ReceptionServiceInterface interface {
	CreateReceptionAct(ctx context.Context, receiverID uint64, payload dto.CreateReceptionActDTO) (*dto.CreatedActDTO, error)
	GetActDetail(ctx context.Context, userID, actID uint64) (*dto.ActDetailDTO, error)
	DeleteAct(ctx context.Context, userID, actID uint64) error
}

type ReceptionService struct {
	txManager     repositories.TxManagerInterface
	actRepo       repositories.ActRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	clientRepo    repositories.ClientRepositoryInterface
	roleService   AuthRoleServiceInterface
	logger        *zap.Logger
}

func NewReceptionService(
	txManager repositories.TxManagerInterface,
	actRepo repositories.ActRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	roleService AuthRoleServiceInterface,
	logger *zap.Logger,
) ReceptionServiceInterface {
	return &ReceptionService{
		txManager:     txManager,
		actRepo:       actRepo,
		equipmentRepo: equipmentRepo,
		clientRepo:    clientRepo,
		roleService:   roleService,
		logger:        logger,
	}
}

// CreateReceptionAct оформляет акт приёмки одной транзакцией: клиент,
// номер акта, сам акт и строки оборудования создаются атомарно.
// Любая ошибка откатывает всё — «половинчатых» актов не бывает.
func (s *ReceptionService) CreateReceptionAct(ctx context.Context, receiverID uint64, payload dto.CreateReceptionActDTO) (*dto.CreatedActDTO, error) {
	if err := s.roleService.RequireAnyRole(ctx, receiverID, constants.RoleReceiver, constants.RoleAdmin); err != nil {
		return nil, err
	}

	// Строки без выбранной модели отбрасываются до транзакции.
	lines := make([]dto.EquipmentLineDTO, 0, len(payload.EquipmentList))
	for _, line := range payload.EquipmentList {
		if line.ModelID != nil && *line.ModelID != 0 {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrActWithoutItems
	}

	var created dto.CreatedActDTO
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		clientID, err := s.resolveClient(ctx, tx, payload.Client)
		if err != nil {
			return err
		}

		periodKey, from, to := ActPeriod(time.Now())
		existing, err := s.actRepo.GetActNumbersForPeriod(ctx, tx, from, to)
		if err != nil {
			return err
		}
		actNumber := NextActNumber(periodKey, existing)

		act, err := s.actRepo.CreateAct(ctx, tx, actNumber, clientID, receiverID)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if _, err := s.equipmentRepo.CreateEquipment(ctx, tx, act.ID, line); err != nil {
				return err
			}
		}

		created = dto.CreatedActDTO{
			ID:             act.ID,
			ActNumber:      act.ActNumber,
			ClientID:       clientID,
			EquipmentCount: len(lines),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ReceptionService: Ошибка оформления акта приёмки",
			zap.Uint64("receiverID", receiverID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("ReceptionService: Оформлен акт приёмки",
		zap.String("actNumber", created.ActNumber),
		zap.Uint64("clientID", created.ClientID),
		zap.Int("equipmentCount", created.EquipmentCount))
	return &created, nil
}

// resolveClient возвращает ID клиента по заявке: существующий клиент
// получает обновлённые контакты, новый — создаётся внутри транзакции.
func (s *ReceptionService) resolveClient(ctx context.Context, tx pgx.Tx, client dto.ActClientDTO) (uint64, error) {
	if client.ID != nil && *client.ID != 0 {
		existing, err := s.clientRepo.FindClientByID(ctx, tx, *client.ID)
		if err != nil {
			return 0, err
		}
		if existing.ContactPerson != client.ContactPerson || existing.Phone != client.Phone {
			if err := s.clientRepo.UpdateContacts(ctx, tx, existing.ID, client.ContactPerson, client.Phone); err != nil {
				return 0, err
			}
		}
		return existing.ID, nil
	}

	if client.ShortName == "" || client.FullName == "" {
		return 0, apperrors.NewHttpError(400,
			"для нового клиента обязательны краткое и полное наименования", apperrors.ErrBadRequest, nil)
	}

	createdClient, err := s.clientRepo.CreateClient(ctx, tx, dto.CreateClientDTO{
		ShortName:     client.ShortName,
		FullName:      client.FullName,
		ContactPerson: client.ContactPerson,
		Phone:         client.Phone,
		Email:         client.Email,
		Address:       client.Address,
	})
	if err != nil {
		return 0, err
	}
	return createdClient.ID, nil
}

func (s *ReceptionService) GetActDetail(ctx context.Context, userID, actID uint64) (*dto.ActDetailDTO, error) {
	if err := s.roleService.RequireAnyRole(ctx, userID,
		constants.RoleReceiver, constants.RoleCoordinator, constants.RoleAdmin); err != nil {
		return nil, err
	}

	act, err := s.actRepo.FindActByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, nil, act.ClientID)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.GetEquipmentByAct(ctx, actID)
	if err != nil {
		return nil, err
	}

	return &dto.ActDetailDTO{
		Act:       *act,
		Client:    *client,
		Equipment: equipment,
	}, nil
}

// DeleteAct удаляет ошибочно оформленный акт вместе с оборудованием.
// Акт, по которому что-то уже выдано клиенту, удалять нельзя.
func (s *ReceptionService) DeleteAct(ctx context.Context, userID, actID uint64) error {
	if err := s.roleService.RequireAnyRole(ctx, userID, constants.RoleCoordinator, constants.RoleAdmin); err != nil {
		return err
	}

	equipment, err := s.equipmentRepo.GetEquipmentByAct(ctx, actID)
	if err != nil {
		return err
	}
	for _, item := range equipment {
		if item.Status == constants.StatusIssued {
			return apperrors.ErrEquipmentIssued
		}
	}

	if err := s.actRepo.DeleteAct(ctx, actID); err != nil {
		return err
	}
	s.logger.Info("ReceptionService: Удалён акт приёмки",
		zap.Uint64("actID", actID), zap.Uint64("userID", userID))
	return nil
}
