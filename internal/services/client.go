package services

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	"service-hub/pkg/constants"
)

// Лимиты поиска клиентов для подсказок в форме приёмки.
const (
	clientSearchLimit  = 20
	minClientSearchLen = 2
)

type ClientServiceInterface interface {
	AddClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error)
	SearchClients(ctx context.Context, search string) ([]dto.ShortClientDTO, error)
	DeleteClient(ctx context.Context, userID, clientID uint64) error
}

type ClientService struct {
	clientRepo  repositories.ClientRepositoryInterface
	roleService AuthRoleServiceInterface
	logger      *zap.Logger
}

func NewClientService(
	clientRepo repositories.ClientRepositoryInterface,
	roleService AuthRoleServiceInterface,
	logger *zap.Logger,
) ClientServiceInterface {
	return &ClientService{
		clientRepo:  clientRepo,
		roleService: roleService,
		logger:      logger,
	}
}

func (s *ClientService) AddClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	client, err := s.clientRepo.CreateClientOutsideTx(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ClientService: Добавлен клиент",
		zap.Uint64("clientID", client.ID), zap.String("shortName", client.ShortName))
	return client, nil
}

// SearchClients ищет клиентов по названию. Запросы короче двух символов
// не выполняются, чтобы подсказка не выдавала весь справочник.
func (s *ClientService) SearchClients(ctx context.Context, search string) ([]dto.ShortClientDTO, error) {
	if utf8.RuneCountInString(search) < minClientSearchLen {
		return []dto.ShortClientDTO{}, nil
	}
	return s.clientRepo.SearchClients(ctx, search, clientSearchLimit)
}

// DeleteClient удаляет клиента без актов приёмки. Доступно только
// администратору.
func (s *ClientService) DeleteClient(ctx context.Context, userID, clientID uint64) error {
	if err := s.roleService.RequireRole(ctx, userID, constants.RoleAdmin); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return err
	}
	s.logger.Info("ClientService: Удалён клиент",
		zap.Uint64("clientID", clientID), zap.Uint64("userID", userID))
	return nil
}
