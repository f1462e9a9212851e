package services

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"service-hub/internal/dto"
	"service-hub/internal/entities"
	"service-hub/internal/repositories"
	apperrors "service-hub/pkg/errors"
)

// Заглушки репозиториев для юнит-тестов сервисного слоя.

type stubRoleService struct {
	rolesByUser map[uint64][]string
	invalidated []uint64
}

func (s *stubRoleService) GetUserRoleNames(_ context.Context, userID uint64) ([]string, error) {
	return s.rolesByUser[userID], nil
}

func (s *stubRoleService) HasRole(ctx context.Context, userID uint64, roleName string) (bool, error) {
	return s.HasAnyRole(ctx, userID, roleName)
}

func (s *stubRoleService) HasAnyRole(_ context.Context, userID uint64, roleNames ...string) (bool, error) {
	for _, have := range s.rolesByUser[userID] {
		for _, want := range roleNames {
			if have == want {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *stubRoleService) RequireRole(ctx context.Context, userID uint64, roleName string) error {
	return s.RequireAnyRole(ctx, userID, roleName)
}

func (s *stubRoleService) RequireAnyRole(ctx context.Context, userID uint64, roleNames ...string) error {
	ok, _ := s.HasAnyRole(ctx, userID, roleNames...)
	if !ok {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *stubRoleService) InvalidateUserRolesCache(_ context.Context, userID uint64) error {
	s.invalidated = append(s.invalidated, userID)
	return nil
}

type stubEquipmentRepo struct {
	items          map[uint64]*dto.ActEquipmentDTO
	createdLines   []dto.EquipmentLineDTO
	nextID         uint64
	statusUpdates  map[uint64]string
	failOnCreateAt int
}

func newStubEquipmentRepo() *stubEquipmentRepo {
	return &stubEquipmentRepo{
		items:         make(map[uint64]*dto.ActEquipmentDTO),
		statusUpdates: make(map[uint64]string),
	}
}

func (r *stubEquipmentRepo) CreateEquipment(_ context.Context, _ repositories.Querier, actID uint64, line dto.EquipmentLineDTO) (uint64, error) {
	if r.failOnCreateAt > 0 && len(r.createdLines)+1 >= r.failOnCreateAt {
		return 0, apperrors.ErrNotFound
	}
	r.createdLines = append(r.createdLines, line)
	r.nextID++
	return r.nextID, nil
}

func (r *stubEquipmentRepo) FindEquipmentByID(_ context.Context, id uint64) (*dto.ActEquipmentDTO, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *stubEquipmentRepo) GetEquipmentByAct(_ context.Context, actID uint64) ([]dto.ActEquipmentDTO, error) {
	result := make([]dto.ActEquipmentDTO, 0)
	for _, item := range r.items {
		if item.ActID == actID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *stubEquipmentRepo) GetEquipmentByStatus(_ context.Context, status string) ([]dto.ActEquipmentDTO, error) {
	result := make([]dto.ActEquipmentDTO, 0)
	for _, item := range r.items {
		if item.Status == status {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *stubEquipmentRepo) GetEquipmentInService(_ context.Context) ([]dto.CoordinatorItemDTO, error) {
	return []dto.CoordinatorItemDTO{}, nil
}

func (r *stubEquipmentRepo) UpdateStatus(_ context.Context, id uint64, status string) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	item.Status = status
	r.statusUpdates[id] = status
	return nil
}

func (r *stubEquipmentRepo) UpdatePriority(_ context.Context, id uint64, priority int) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	item.Priority = priority
	return nil
}

func (r *stubEquipmentRepo) UpdateGuarantee(_ context.Context, id uint64, guaranteeType string) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	item.GuaranteeType = guaranteeType
	return nil
}

func (r *stubEquipmentRepo) AssignSpecialist(_ context.Context, id uint64, userRoleID uint64) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	item.SpecialistID = &userRoleID
	return nil
}

type stubUserRoleRepo struct {
	userRoles map[uint64]*entities.UserRole
}

func (r *stubUserRoleRepo) AssignRole(_ context.Context, userID, roleID uint64) (*entities.UserRole, error) {
	return &entities.UserRole{ID: 1, UserID: userID, RoleID: roleID, IsActive: true}, nil
}

func (r *stubUserRoleRepo) DeactivateUserRole(_ context.Context, userRoleID uint64) (*entities.UserRole, error) {
	ur, ok := r.userRoles[userRoleID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	ur.IsActive = false
	return ur, nil
}

func (r *stubUserRoleRepo) FindUserRoleByID(_ context.Context, userRoleID uint64) (*entities.UserRole, error) {
	ur, ok := r.userRoles[userRoleID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *ur
	return &copied, nil
}

// stubTxManager выполняет колбэк без настоящей транзакции.
type stubTxManager struct{}

func (m *stubTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type stubActRepo struct {
	existingNumbers []string
	createdNumbers  []string
	nextID          uint64
	deletedIDs      []uint64
}

func (r *stubActRepo) GetActNumbersForPeriod(_ context.Context, _ repositories.Querier, _, _ time.Time) ([]string, error) {
	return r.existingNumbers, nil
}

func (r *stubActRepo) CreateAct(_ context.Context, _ repositories.Querier, actNumber string, clientID, receiverID uint64) (*dto.ReceptionActDTO, error) {
	r.createdNumbers = append(r.createdNumbers, actNumber)
	r.nextID++
	return &dto.ReceptionActDTO{ID: r.nextID, ActNumber: actNumber, ClientID: clientID}, nil
}

func (r *stubActRepo) FindActByID(_ context.Context, id uint64) (*dto.ReceptionActDTO, error) {
	if r.nextID < id {
		return nil, apperrors.ErrNotFound
	}
	return &dto.ReceptionActDTO{ID: id, ActNumber: "ACT-2025-0001", ClientID: 1}, nil
}

func (r *stubActRepo) GetRecentActs(_ context.Context, _ time.Time) ([]dto.ActSummaryDTO, error) {
	return []dto.ActSummaryDTO{}, nil
}

func (r *stubActRepo) DeleteAct(_ context.Context, id uint64) error {
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

type stubClientRepo struct {
	clients         map[uint64]*dto.ClientDTO
	nextID          uint64
	updatedContacts map[uint64]string
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients:         make(map[uint64]*dto.ClientDTO),
		updatedContacts: make(map[uint64]string),
	}
}

func (r *stubClientRepo) CreateClient(_ context.Context, _ repositories.Querier, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	r.nextID++
	client := &dto.ClientDTO{
		ID:            r.nextID,
		ShortName:     payload.ShortName,
		FullName:      payload.FullName,
		ContactPerson: payload.ContactPerson,
		Phone:         payload.Phone,
	}
	r.clients[client.ID] = client
	return client, nil
}

func (r *stubClientRepo) CreateClientOutsideTx(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	return r.CreateClient(ctx, nil, payload)
}

func (r *stubClientRepo) FindClientByID(_ context.Context, _ repositories.Querier, id uint64) (*dto.ClientDTO, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *stubClientRepo) UpdateContacts(_ context.Context, _ repositories.Querier, id uint64, contactPerson, phone string) error {
	client, ok := r.clients[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	client.ContactPerson = contactPerson
	client.Phone = phone
	r.updatedContacts[id] = contactPerson
	return nil
}

func (r *stubClientRepo) SearchClients(_ context.Context, _ string, _ uint64) ([]dto.ShortClientDTO, error) {
	return []dto.ShortClientDTO{}, nil
}

func (r *stubClientRepo) DeleteClient(_ context.Context, id uint64) error {
	if _, ok := r.clients[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type stubUserRepo struct {
	users       map[uint64]*entities.User
	roleNames   map[uint64][]string
	rolesCalled int
}

func (r *stubUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindUserByLogin(_ context.Context, login string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Login == login {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *stubUserRepo) GetActiveRoleNames(_ context.Context, userID uint64) ([]string, error) {
	r.rolesCalled++
	return r.roleNames[userID], nil
}

func (r *stubUserRepo) GetActiveUserRoles(_ context.Context, _ uint64) ([]entities.UserRole, error) {
	return []entities.UserRole{}, nil
}

// memoryCache — кеш в памяти вместо Redis.
type memoryCache struct {
	values   map[string]string
	counters map[string]int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		values:   make(map[string]string),
		counters: make(map[string]int64),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	if counter, ok := c.counters[key]; ok {
		return strconv.FormatInt(counter, 10), nil
	}
	value, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s, ok := value.(string); ok {
		c.values[key] = s
	}
	return nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
		delete(c.counters, key)
	}
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.counters[key]++
	return c.counters[key], nil
}

func (c *memoryCache) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}
