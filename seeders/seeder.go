package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-hub/pkg/config"
)

// SeedRolesAndAdmin создаёт справочник ролей и администратора,
// без которого в системе некому раздавать остальные роли.
func SeedRolesAndAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("▶️  Запуск настройки ролей и администратора...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Ролей (Roles): %v", err)
	}
	if err := seedAdmin(ctx, db, cfg); err != nil {
		log.Fatalf("❌ Ошибка создания Администратора: %v", err)
	}

	log.Println("✅ Настройка ролей и администратора завершена!")
}

// SeedDemoCatalog наполняет справочник техники демонстрационными
// категориями, брендами и моделями.
func SeedDemoCatalog(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочника техники...")

	if err := seedCatalog(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения справочника техники: %v", err)
	}

	log.Println("✅ Наполнение справочника техники завершено!")
}
