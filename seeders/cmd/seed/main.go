package main

import (
	"flag"
	"log"

	"service-hub/pkg/config"
	"service-hub/pkg/database/postgresql"
	"service-hub/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runRoles := flag.Bool("roles", false, "Создать роли и администратора")
	runCatalog := flag.Bool("catalog", false, "Наполнить справочник техники демо-данными")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	if !*runRoles && !*runCatalog && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -roles")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runRoles {
		seeders.SeedRolesAndAdmin(dbPool, cfg)
		log.Println("======================================================")
	}

	if *runAll || *runCatalog {
		seeders.SeedDemoCatalog(dbPool)
		log.Println("======================================================")
	}

	log.Println("🎉 Готово.")
}
