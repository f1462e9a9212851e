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

const modelTable = "equipment_models"

type dbModel struct {
	ID          uint64
	Name        string
	BrandID     uint64
	CategoryID  uint64
	BrandName   string
	CatName     string
	Description sql.NullString
}

// ToDTO собирает полное название в формате "Категория Бренд Модель".
func (db *dbModel) ToDTO() dto.ModelDTO {
	return dto.ModelDTO{
		ID:          db.ID,
		Name:        db.Name,
		BrandID:     db.BrandID,
		CategoryID:  db.CategoryID,
		FullName:    fmt.Sprintf("%s %s %s", db.CatName, db.BrandName, db.Name),
		Description: utils.NullStringToString(db.Description),
	}
}

type ModelRepositoryInterface interface {
	GetModelsByBrand(ctx context.Context, brandID uint64) ([]dto.ModelDTO, error)
	FindModelByID(ctx context.Context, q Querier, id uint64) (*dto.ModelDTO, error)
	ExistsByNameAndBrand(ctx context.Context, name string, brandID uint64) (bool, error)
	CreateModel(ctx context.Context, payload dto.CreateModelDTO, categoryID uint64) (*dto.ModelDTO, error)
}

type modelRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewModelRepository(storage *pgxpool.Pool, logger *zap.Logger) ModelRepositoryInterface {
	return &modelRepository{storage: storage, logger: logger}
}

func modelSelect() sq.SelectBuilder {
	return sq.Select("m.id", "m.name", "m.brand_id", "m.category_id", "b.name", "c.name", "m.description").
		From(modelTable + " m").
		Join("brands b ON b.id = m.brand_id").
		Join("equipment_categories c ON c.id = m.category_id").
		PlaceholderFormat(sq.Dollar)
}

func scanModel(row pgx.Row) (*dto.ModelDTO, error) {
	var dbRow dbModel
	err := row.Scan(&dbRow.ID, &dbRow.Name, &dbRow.BrandID, &dbRow.CategoryID,
		&dbRow.BrandName, &dbRow.CatName, &dbRow.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	modelDTO := dbRow.ToDTO()
	return &modelDTO, nil
}

func (r *modelRepository) GetModelsByBrand(ctx context.Context, brandID uint64) ([]dto.ModelDTO, error) {
	query, args, err := modelSelect().
		Where(sq.Eq{"m.brand_id": brandID}).
		OrderBy("m.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]dto.ModelDTO, 0)
	for rows.Next() {
		var dbRow dbModel
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.BrandID, &dbRow.CategoryID,
			&dbRow.BrandName, &dbRow.CatName, &dbRow.Description); err != nil {
			return nil, err
		}
		models = append(models, dbRow.ToDTO())
	}
	return models, rows.Err()
}

func (r *modelRepository) FindModelByID(ctx context.Context, q Querier, id uint64) (*dto.ModelDTO, error) {
	if q == nil {
		q = r.storage
	}
	query, args, err := modelSelect().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanModel(q.QueryRow(ctx, query, args...))
}

func (r *modelRepository) ExistsByNameAndBrand(ctx context.Context, name string, brandID uint64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1 AND brand_id = $2)", modelTable)
	if err := r.storage.QueryRow(ctx, query, name, brandID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateModel вставляет модель. category_id дублирует категорию бренда —
// это денормализация оригинальной схемы ради быстрых выборок.
func (r *modelRepository) CreateModel(ctx context.Context, payload dto.CreateModelDTO, categoryID uint64) (*dto.ModelDTO, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, brand_id, category_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, modelTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.BrandID, categoryID, payload.Description).Scan(&id)
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
	return r.FindModelByID(ctx, nil, id)
}
