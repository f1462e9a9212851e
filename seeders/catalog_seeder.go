package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedCatalog(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение справочника 'категории/бренды/модели'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, category := range catalogData {
		var categoryID uint64
		err := tx.QueryRow(ctx, `
			INSERT INTO equipment_categories (name, department) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET department = EXCLUDED.department
			RETURNING id`, category.Name, category.Department).Scan(&categoryID)
		if err != nil {
			return err
		}

		for brandName, models := range category.Brands {
			var brandID uint64
			err := tx.QueryRow(ctx, `
				INSERT INTO brands (name, category_id) VALUES ($1, $2)
				ON CONFLICT (name, category_id) DO UPDATE SET name = EXCLUDED.name
				RETURNING id`, brandName, categoryID).Scan(&brandID)
			if err != nil {
				return err
			}

			for _, modelName := range models {
				_, err := tx.Exec(ctx, `
					INSERT INTO equipment_models (name, brand_id, category_id) VALUES ($1, $2, $3)
					ON CONFLICT (name, brand_id) DO NOTHING`, modelName, brandID, categoryID)
				if err != nil {
					return err
				}
			}
		}
	}
	return tx.Commit(ctx)
}
