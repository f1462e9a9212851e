package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-hub/internal/entities"
	apperrors "service-hub/pkg/errors"
)

const (
	roleTable  = "roles"
	roleFields = "id, name, description, created_at, updated_at"
)

type dbRole struct {
	ID          uint64
	Name        string
	Description sql.NullString
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

func (db *dbRole) ToEntity() *entities.Role {
	role := &entities.Role{
		ID:   db.ID,
		Name: db.Name,
	}
	if db.Description.Valid {
		role.Description = db.Description.String
	}
	createdAt := db.CreatedAt
	role.CreatedAt = &createdAt
	if db.UpdatedAt.Valid {
		updatedAt := db.UpdatedAt.Time
		role.UpdatedAt = &updatedAt
	}
	return role
}

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context) ([]entities.Role, error)
	FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error)
}

type roleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &roleRepository{storage: storage, logger: logger}
}

func (r *roleRepository) GetRoles(ctx context.Context) ([]entities.Role, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name", roleFields, roleTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var dbRow dbRole
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, *dbRow.ToEntity())
	}
	return roles, rows.Err()
}

func (r *roleRepository) FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", roleFields, roleTable)
	var dbRow dbRole
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return dbRow.ToEntity(), nil
}
