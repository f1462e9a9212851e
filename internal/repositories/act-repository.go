package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

const actTable = "reception_acts"

type dbAct struct {
	ID          uint64
	ActNumber   string
	ClientID    uint64
	ReceiverFio string
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
	PrintedAt   sql.NullTime
}

func (db *dbAct) ToDTO() dto.ReceptionActDTO {
	return dto.ReceptionActDTO{
		ID:        db.ID,
		ActNumber: db.ActNumber,
		ClientID:  db.ClientID,
		Receiver:  db.ReceiverFio,
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
		PrintedAt: utils.NullTimeToEmptyString(db.PrintedAt),
	}
}

type ActRepositoryInterface interface {
	GetActNumbersForPeriod(ctx context.Context, q Querier, from, to time.Time) ([]string, error)
	CreateAct(ctx context.Context, q Querier, actNumber string, clientID, receiverID uint64) (*dto.ReceptionActDTO, error)
	FindActByID(ctx context.Context, id uint64) (*dto.ReceptionActDTO, error)
	GetRecentActs(ctx context.Context, since time.Time) ([]dto.ActSummaryDTO, error)
	DeleteAct(ctx context.Context, id uint64) error
}

type actRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewActRepository(storage *pgxpool.Pool, logger *zap.Logger) ActRepositoryInterface {
	return &actRepository{storage: storage, logger: logger}
}

// GetActNumbersForPeriod читает номера актов за период. Вызывается внутри
// транзакции оформления акта, чтобы счётчик номера считался по
// согласованному снимку данных.
func (r *actRepository) GetActNumbersForPeriod(ctx context.Context, q Querier, from, to time.Time) ([]string, error) {
	if q == nil {
		q = r.storage
	}
	query := "SELECT act_number FROM reception_acts WHERE created_at >= $1 AND created_at < $2"
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	numbers := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func (r *actRepository) CreateAct(ctx context.Context, q Querier, actNumber string, clientID, receiverID uint64) (*dto.ReceptionActDTO, error) {
	query := `
		INSERT INTO reception_acts (act_number, client_id, receiver_id)
		VALUES ($1, $2, $3)
		RETURNING id, act_number, client_id,
			(SELECT fio FROM users WHERE id = $3), created_at, updated_at, printed_at`

	var dbRow dbAct
	err := q.QueryRow(ctx, query, actNumber, clientID, receiverID).
		Scan(&dbRow.ID, &dbRow.ActNumber, &dbRow.ClientID, &dbRow.ReceiverFio,
			&dbRow.CreatedAt, &dbRow.UpdatedAt, &dbRow.PrintedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrNotFound
			}
		}
		return nil, err
	}
	actDTO := dbRow.ToDTO()
	return &actDTO, nil
}

func (r *actRepository) FindActByID(ctx context.Context, id uint64) (*dto.ReceptionActDTO, error) {
	query := `
		SELECT a.id, a.act_number, a.client_id, u.fio, a.created_at, a.updated_at, a.printed_at
		FROM reception_acts a
		JOIN users u ON u.id = a.receiver_id
		WHERE a.id = $1`

	var dbRow dbAct
	err := r.storage.QueryRow(ctx, query, id).
		Scan(&dbRow.ID, &dbRow.ActNumber, &dbRow.ClientID, &dbRow.ReceiverFio,
			&dbRow.CreatedAt, &dbRow.UpdatedAt, &dbRow.PrintedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	actDTO := dbRow.ToDTO()
	return &actDTO, nil
}

// GetRecentActs возвращает акты, созданные после указанного момента,
// каждый с количеством принятого по нему оборудования.
func (r *actRepository) GetRecentActs(ctx context.Context, since time.Time) ([]dto.ActSummaryDTO, error) {
	query := `
		SELECT a.id, a.act_number, c.short_name, COUNT(e.id), a.created_at
		FROM reception_acts a
		JOIN clients c ON c.id = a.client_id
		LEFT JOIN received_equipment e ON e.act_id = a.id
		WHERE a.created_at >= $1
		GROUP BY a.id, a.act_number, c.short_name, a.created_at
		ORDER BY a.created_at DESC`

	rows, err := r.storage.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := make([]dto.ActSummaryDTO, 0)
	for rows.Next() {
		var a dto.ActSummaryDTO
		var createdAt time.Time
		if err := rows.Scan(&a.ID, &a.ActNumber, &a.ClientName, &a.EquipmentCount, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = createdAt.Local().Format("2006-01-02 15:04:05")
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

// DeleteAct удаляет акт; строки оборудования удаляются каскадно по FK.
func (r *actRepository) DeleteAct(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM reception_acts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
