package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

const (
	clientTable  = "clients"
	clientFields = "id, short_name, full_name, contact_person, phone, email, address, created_at, updated_at"
)

type dbClient struct {
	ID            uint64
	ShortName     string
	FullName      string
	ContactPerson string
	Phone         string
	Email         sql.NullString
	Address       sql.NullString
	CreatedAt     time.Time
	UpdatedAt     sql.NullTime
}

func (db *dbClient) ToDTO() dto.ClientDTO {
	return dto.ClientDTO{
		ID:            db.ID,
		ShortName:     db.ShortName,
		FullName:      db.FullName,
		ContactPerson: db.ContactPerson,
		Phone:         db.Phone,
		Email:         utils.NullStringToString(db.Email),
		Address:       utils.NullStringToString(db.Address),
		CreatedAt:     db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt:     utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type ClientRepositoryInterface interface {
	CreateClient(ctx context.Context, q Querier, payload dto.CreateClientDTO) (*dto.ClientDTO, error)
	CreateClientOutsideTx(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error)
	FindClientByID(ctx context.Context, q Querier, id uint64) (*dto.ClientDTO, error)
	UpdateContacts(ctx context.Context, q Querier, id uint64, contactPerson, phone string) error
	SearchClients(ctx context.Context, search string, limit uint64) ([]dto.ShortClientDTO, error)
	DeleteClient(ctx context.Context, id uint64) error
}

type clientRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewClientRepository(storage *pgxpool.Pool, logger *zap.Logger) ClientRepositoryInterface {
	return &clientRepository{storage: storage, logger: logger}
}

func (r *clientRepository) scanClient(row pgx.Row) (*dto.ClientDTO, error) {
	var dbRow dbClient
	err := row.Scan(&dbRow.ID, &dbRow.ShortName, &dbRow.FullName, &dbRow.ContactPerson,
		&dbRow.Phone, &dbRow.Email, &dbRow.Address, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	clientDTO := dbRow.ToDTO()
	return &clientDTO, nil
}

// CreateClient вставляет клиента через переданный Querier — так клиент
// может создаваться внутри транзакции оформления акта.
func (r *clientRepository) CreateClient(ctx context.Context, q Querier, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (short_name, full_name, contact_person, phone, email, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, clientTable, clientFields)
	return r.scanClient(q.QueryRow(ctx, query,
		payload.ShortName, payload.FullName, payload.ContactPerson,
		payload.Phone, payload.Email, payload.Address))
}

func (r *clientRepository) CreateClientOutsideTx(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	return r.CreateClient(ctx, r.storage, payload)
}

func (r *clientRepository) FindClientByID(ctx context.Context, q Querier, id uint64) (*dto.ClientDTO, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", clientFields, clientTable)
	return r.scanClient(q.QueryRow(ctx, query, id))
}

// UpdateContacts обновляет изменяемые контактные поля клиента при
// оформлении акта (ответственное лицо и телефон со слов клиента).
func (r *clientRepository) UpdateContacts(ctx context.Context, q Querier, id uint64, contactPerson, phone string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET contact_person = $1, phone = $2, updated_at = NOW()
		WHERE id = $3`, clientTable)
	result, err := q.Exec(ctx, query, contactPerson, phone, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SearchClients ищет клиентов по краткому или полному наименованию.
func (r *clientRepository) SearchClients(ctx context.Context, search string, limit uint64) ([]dto.ShortClientDTO, error) {
	builder := sq.Select("id", "short_name", "full_name", "contact_person", "phone").
		From(clientTable).
		OrderBy("short_name").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"short_name": pattern},
			sq.ILike{"full_name": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]dto.ShortClientDTO, 0)
	for rows.Next() {
		var c dto.ShortClientDTO
		if err := rows.Scan(&c.ID, &c.ShortName, &c.FullName, &c.ContactPerson, &c.Phone); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// DeleteClient удаляет клиента. Пока на клиента оформлены акты приёмки,
// удаление блокируется внешним ключом.
func (r *clientRepository) DeleteClient(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", clientTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrClientHasActs
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
