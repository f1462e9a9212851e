package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-hub/internal/entities"
	apperrors "service-hub/pkg/errors"
)

type UserRoleRepositoryInterface interface {
	AssignRole(ctx context.Context, userID, roleID uint64) (*entities.UserRole, error)
	DeactivateUserRole(ctx context.Context, userRoleID uint64) (*entities.UserRole, error)
	FindUserRoleByID(ctx context.Context, userRoleID uint64) (*entities.UserRole, error)
}

type userRoleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRoleRepositoryInterface {
	return &userRoleRepository{storage: storage, logger: logger}
}

func (r *userRoleRepository) scanUserRole(row pgx.Row) (*entities.UserRole, error) {
	var ur entities.UserRole
	var assignedAt time.Time
	err := row.Scan(&ur.ID, &ur.UserID, &ur.RoleID, &ur.RoleName, &ur.IsActive, &assignedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	ur.AssignedAt = assignedAt.Local().Format("2006-01-02 15:04:05")
	return &ur, nil
}

// AssignRole назначает роль пользователю. Пара (user, role) уникальна:
// повторное назначение отклоняется, даже если прежнее деактивировано —
// в этом случае запись активируется заново.
func (r *userRoleRepository) AssignRole(ctx context.Context, userID, roleID uint64) (*entities.UserRole, error) {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		RETURNING id, user_id, role_id,
			(SELECT name FROM roles WHERE id = $2), is_active, assigned_at`

	userRole, err := r.scanUserRole(r.storage.QueryRow(ctx, query, userID, roleID))
	if err == nil {
		return userRole, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			// Пара уже существует: возвращаем её в актив.
			reactivate := `
				UPDATE user_roles SET is_active = TRUE
				WHERE user_id = $1 AND role_id = $2 AND is_active = FALSE
				RETURNING id, user_id, role_id,
					(SELECT name FROM roles WHERE id = $2), is_active, assigned_at`
			userRole, errUpd := r.scanUserRole(r.storage.QueryRow(ctx, reactivate, userID, roleID))
			if errors.Is(errUpd, apperrors.ErrNotFound) {
				return nil, apperrors.ErrConflict
			}
			return userRole, errUpd
		case "23503":
			return nil, apperrors.ErrNotFound
		}
	}
	return nil, err
}

func (r *userRoleRepository) DeactivateUserRole(ctx context.Context, userRoleID uint64) (*entities.UserRole, error) {
	query := `
		UPDATE user_roles ur SET is_active = FALSE
		FROM roles ro
		WHERE ur.id = $1 AND ro.id = ur.role_id
		RETURNING ur.id, ur.user_id, ur.role_id, ro.name, ur.is_active, ur.assigned_at`
	return r.scanUserRole(r.storage.QueryRow(ctx, query, userRoleID))
}

func (r *userRoleRepository) FindUserRoleByID(ctx context.Context, userRoleID uint64) (*entities.UserRole, error) {
	query := `
		SELECT ur.id, ur.user_id, ur.role_id, ro.name, ur.is_active, ur.assigned_at
		FROM user_roles ur
		JOIN roles ro ON ro.id = ur.role_id
		WHERE ur.id = $1`
	return r.scanUserRole(r.storage.QueryRow(ctx, query, userRoleID))
}
