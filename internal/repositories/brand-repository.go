package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
	brandTable  = "brands"
	brandFields = "id, name, category_id, description"
)

type dbBrand struct {
	ID          uint64
	Name        string
	CategoryID  uint64
	Description sql.NullString
}

func (db *dbBrand) ToDTO() dto.BrandDTO {
	return dto.BrandDTO{
		ID:          db.ID,
		Name:        db.Name,
		CategoryID:  db.CategoryID,
		Description: utils.NullStringToString(db.Description),
	}
}

type BrandRepositoryInterface interface {
	GetBrandsByCategory(ctx context.Context, categoryID uint64) ([]dto.BrandDTO, error)
	FindBrandByID(ctx context.Context, id uint64) (*dto.BrandDTO, error)
	ExistsByNameAndCategory(ctx context.Context, name string, categoryID uint64) (bool, error)
	CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error)
}

type brandRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBrandRepository(storage *pgxpool.Pool, logger *zap.Logger) BrandRepositoryInterface {
	return &brandRepository{storage: storage, logger: logger}
}

func (r *brandRepository) GetBrandsByCategory(ctx context.Context, categoryID uint64) ([]dto.BrandDTO, error) {
	builder := sq.Select("id", "name", "category_id", "description").
		From(brandTable).
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]dto.BrandDTO, 0)
	for rows.Next() {
		var dbRow dbBrand
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.CategoryID, &dbRow.Description); err != nil {
			return nil, err
		}
		brands = append(brands, dbRow.ToDTO())
	}
	return brands, rows.Err()
}

func (r *brandRepository) FindBrandByID(ctx context.Context, id uint64) (*dto.BrandDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", brandFields, brandTable)
	var dbRow dbBrand
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CategoryID, &dbRow.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	brandDTO := dbRow.ToDTO()
	return &brandDTO, nil
}

// ExistsByNameAndCategory — бренд уникален в пределах категории.
func (r *brandRepository) ExistsByNameAndCategory(ctx context.Context, name string, categoryID uint64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1 AND category_id = $2)", brandTable)
	if err := r.storage.QueryRow(ctx, query, name, categoryID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *brandRepository) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, category_id, description)
		VALUES ($1, $2, $3)
		RETURNING %s`, brandTable, brandFields)

	var dbRow dbBrand
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.CategoryID, payload.Description).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.CategoryID, &dbRow.Description)
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
	brandDTO := dbRow.ToDTO()
	return &brandDTO, nil
}
