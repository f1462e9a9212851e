package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

const (
	categoryTable  = "equipment_categories"
	categoryFields = "id, name, description, department"
)

type dbCategory struct {
	ID          uint64
	Name        string
	Description sql.NullString
	Department  string
}

func (db *dbCategory) ToDTO() dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:          db.ID,
		Name:        db.Name,
		Description: utils.NullStringToString(db.Description),
		Department:  db.Department,
	}
}

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	FindCategoryByID(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
}

type categoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &categoryRepository{storage: storage, logger: logger}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name", categoryFields, categoryTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]dto.CategoryDTO, 0)
	for rows.Next() {
		var dbRow dbCategory
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Department); err != nil {
			return nil, err
		}
		categories = append(categories, dbRow.ToDTO())
	}
	return categories, rows.Err()
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", categoryFields, categoryTable)
	var dbRow dbCategory
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	categoryDTO := dbRow.ToDTO()
	return &categoryDTO, nil
}

// ExistsByName — предварительная проверка уникальности (точное совпадение,
// с учётом регистра). Гонку двух одновременных вставок окончательно
// разрешает уникальный индекс.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1)", categoryTable)
	if err := r.storage.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	department := payload.Department
	if department == "" {
		department = "NONE"
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, department)
		VALUES ($1, $2, $3)
		RETURNING %s`, categoryTable, categoryFields)

	var dbRow dbCategory
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.Description, department).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Department)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	categoryDTO := dbRow.ToDTO()
	return &categoryDTO, nil
}
