package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"productcatalog/logger"
	"productcatalog/models"
	"productcatalog/utils"
)

const sampleProductCount = 50

var sampleCategories = []string{
	"Electronics",
	"Furniture",
	"Clothing",
	"Books",
	"Food",
	"Beverages",
	"Sports",
	"Toys",
}

var (
	sampleAdjectives = []string{
		"Classic", "Compact", "Deluxe", "Eco", "Essential", "Premium", "Pro", "Smart",
		"Sturdy", "Ultra", "Vintage", "Wireless",
	}
	sampleNouns = []string{
		"Backpack", "Blender", "Chair", "Desk", "Headphones", "Jacket", "Kettle",
		"Lamp", "Novel", "Speaker", "Tent", "Watch",
	}
)

// Seed inserts sample categories and products. Each table is only seeded
// while it is empty, so running it again is harmless.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := seedCategories(ctx, db); err != nil {
		return err
	}
	return seedProducts(ctx, db, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
}

func seedCategories(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Categories already exist, skipping category seeding")
		return nil
	}

	now := utils.FormatDateTimeForDB(time.Now())
	for _, name := range sampleCategories {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO categories (name, slug, created_at, updated_at) VALUES (?, ?, ?, ?)",
			name, utils.Slugify(name), now, now,
		); err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
	}

	logger.Info("Sample categories created: %d", len(sampleCategories))
	return nil
}

func seedProducts(ctx context.Context, db *sql.DB, rng *rand.Rand) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Products already exist, skipping product seeding")
		return nil
	}

	rows, err := db.QueryContext(ctx, "SELECT id FROM categories")
	if err != nil {
		return err
	}
	var categoryIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		categoryIDs = append(categoryIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return fmt.Errorf("seed products: no categories available")
	}

	now := utils.FormatDateTimeForDB(time.Now())
	// Perm over the adjective x noun grid keeps names unique.
	combos := rng.Perm(len(sampleAdjectives) * len(sampleNouns))
	for i := 0; i < sampleProductCount && i < len(combos); i++ {
		adj := sampleAdjectives[combos[i]/len(sampleNouns)]
		noun := sampleNouns[combos[i]%len(sampleNouns)]
		name := fmt.Sprintf("Product %s %s", adj, noun)

		// 10.00 .. 1000.99
		price := decimal.New(int64(rng.IntN(991)+10)*100+int64(rng.IntN(100)), -2)
		status := models.ProductStatuses[rng.IntN(len(models.ProductStatuses))]
		categoryID := categoryIDs[rng.IntN(len(categoryIDs))]

		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (name, description, price, category_id, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			name, "Description of "+name, price, categoryID, status, now, now,
		); err != nil {
			return fmt.Errorf("seed product %s: %w", name, err)
		}
	}

	logger.Info("Sample products created: %d", sampleProductCount)
	return nil
}
