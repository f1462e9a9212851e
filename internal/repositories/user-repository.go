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
	userTable  = "users"
	userFields = "id, login, fio, password_hash, email, phone, is_active, created_at, updated_at"
)

type dbUser struct {
	ID           uint64
	Login        string
	Fio          string
	PasswordHash string
	Email        sql.NullString
	Phone        sql.NullString
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbUser) ToEntity() *entities.User {
	u := &entities.User{
		ID:           db.ID,
		Login:        db.Login,
		Fio:          db.Fio,
		PasswordHash: db.PasswordHash,
		IsActive:     db.IsActive,
	}
	if db.Email.Valid {
		u.Email = db.Email.String
	}
	if db.Phone.Valid {
		u.Phone = db.Phone.String
	}
	createdAt := db.CreatedAt
	u.CreatedAt = &createdAt
	if db.UpdatedAt.Valid {
		updatedAt := db.UpdatedAt.Time
		u.UpdatedAt = &updatedAt
	}
	return u
}

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByLogin(ctx context.Context, login string) (*entities.User, error)
	GetActiveRoleNames(ctx context.Context, userID uint64) ([]string, error)
	GetActiveUserRoles(ctx context.Context, userID uint64) ([]entities.UserRole, error)
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func (r *userRepository) scanUser(row pgx.Row) (*entities.User, error) {
	var dbRow dbUser
	err := row.Scan(&dbRow.ID, &dbRow.Login, &dbRow.Fio, &dbRow.PasswordHash,
		&dbRow.Email, &dbRow.Phone, &dbRow.IsActive, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return dbRow.ToEntity(), nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return r.scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE login = $1", userFields, userTable)
	return r.scanUser(r.storage.QueryRow(ctx, query, login))
}

// GetActiveRoleNames возвращает названия активных ролей пользователя.
// Используется сервисом авторизации, результат кешируется в Redis.
func (r *userRepository) GetActiveRoleNames(ctx context.Context, userID uint64) ([]string, error) {
	query := `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1 AND ur.is_active = TRUE
		ORDER BY r.name`

	rows, err := r.storage.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *userRepository) GetActiveUserRoles(ctx context.Context, userID uint64) ([]entities.UserRole, error) {
	query := `
		SELECT ur.id, ur.user_id, ur.role_id, r.name, ur.is_active, ur.assigned_at
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1 AND ur.is_active = TRUE
		ORDER BY r.name`

	rows, err := r.storage.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	userRoles := make([]entities.UserRole, 0)
	for rows.Next() {
		var ur entities.UserRole
		var assignedAt time.Time
		if err := rows.Scan(&ur.ID, &ur.UserID, &ur.RoleID, &ur.RoleName, &ur.IsActive, &assignedAt); err != nil {
			return nil, err
		}
		ur.AssignedAt = assignedAt.Local().Format("2006-01-02 15:04:05")
		userRoles = append(userRoles, ur)
	}
	return userRoles, rows.Err()
}
