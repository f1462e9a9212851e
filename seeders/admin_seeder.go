package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-hub/pkg/config"
	"service-hub/pkg/constants"
	"service-hub/pkg/utils"
)

func seedAdmin(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	log.Println("  - Создание пользователя-администратора...")

	var exists bool
	err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)", cfg.Auth.AdminLogin).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}

	var roleID uint64
	err = db.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1 LIMIT 1", constants.RoleAdmin).Scan(&roleID)
	if err != nil {
		return fmt.Errorf("не найдена роль %q: %w", constants.RoleAdmin, err)
	}

	hashedPassword, err := utils.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}

	var userID uint64
	err = db.QueryRow(ctx,
		`INSERT INTO users (login, fio, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		cfg.Auth.AdminLogin, "Администратор системы", hashedPassword).Scan(&userID)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID)
	return err
}
