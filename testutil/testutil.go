// Package testutil builds throwaway databases and fixtures for tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"productcatalog/database"
	"productcatalog/models"
	"productcatalog/utils"
)

var fixtureSeq atomic.Int64

// NewDB opens a migrated in-memory SQLite database that is closed with the test.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, database.DriverSQLite))
	return db
}

// CreateCategory inserts a category with a unique slug.
func CreateCategory(t testing.TB, db *sql.DB, name string) models.Category {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	slug := fmt.Sprintf("%s-%d", utils.Slugify(name), fixtureSeq.Add(1))
	result, err := db.Exec(
		"INSERT INTO categories (name, slug, created_at, updated_at) VALUES (?, ?, ?, ?)",
		name, slug, utils.FormatDateTimeForDB(now), utils.FormatDateTimeForDB(now),
	)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	return models.Category{ID: id, Name: name, Slug: slug, CreatedAt: now}
}

// ProductFixture describes a product row. Zero fields get defaults.
type ProductFixture struct {
	Name        string
	Description string
	Price       string
	CategoryID  int64
	Status      string
	CreatedAt   time.Time
}

// CreateProduct inserts a product and returns it with its category id set.
func CreateProduct(t testing.TB, db *sql.DB, f ProductFixture) models.Product {
	t.Helper()

	if f.Name == "" {
		f.Name = fmt.Sprintf("Product %d", fixtureSeq.Add(1))
	}
	if f.Price == "" {
		f.Price = "19.99"
	}
	if f.Status == "" {
		f.Status = models.ProductStatusActive
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	require.NotZero(t, f.CategoryID, "product fixture needs a category")

	price, err := decimal.NewFromString(f.Price)
	require.NoError(t, err)

	stamp := utils.FormatDateTimeForDB(f.CreatedAt)
	result, err := db.Exec(`
		INSERT INTO products (name, description, price, category_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.Name, f.Description, price, f.CategoryID, f.Status, stamp, stamp,
	)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	return models.Product{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		CategoryID:  f.CategoryID,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.CreatedAt,
	}
}

// CreateProducts inserts n products in the category named "<prefix> <i>".
func CreateProducts(t testing.TB, db *sql.DB, categoryID int64, prefix string, n int) []models.Product {
	t.Helper()

	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, CreateProduct(t, db, ProductFixture{
			Name:       fmt.Sprintf("%s %d", prefix, i),
			CategoryID: categoryID,
		}))
	}
	return products
}
