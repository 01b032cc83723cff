package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/database"
	"productcatalog/testutil"
)

func TestSeed(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	require.NoError(t, database.Seed(ctx, db))

	var categories, products int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categories))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM products").Scan(&products))
	assert.Equal(t, 8, categories)
	assert.Equal(t, 50, products)

	var slug string
	require.NoError(t, db.QueryRow("SELECT slug FROM categories WHERE name = 'Electronics'").Scan(&slug))
	assert.Equal(t, "electronics", slug)

	var minPrice, maxPrice float64
	require.NoError(t, db.QueryRow("SELECT MIN(price), MAX(price) FROM products").Scan(&minPrice, &maxPrice))
	assert.GreaterOrEqual(t, minPrice, 10.0)
	assert.LessOrEqual(t, maxPrice, 1000.99)

	var badStatus int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM products WHERE status NOT IN ('active', 'inactive', 'discontinued')",
	).Scan(&badStatus))
	assert.Zero(t, badStatus)

	var distinctNames int
	require.NoError(t, db.QueryRow("SELECT COUNT(DISTINCT name) FROM products").Scan(&distinctNames))
	assert.Equal(t, 50, distinctNames)
}

func TestSeed_SkipsPopulatedTables(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	cat := testutil.CreateCategory(t, db, "Existing")
	testutil.CreateProducts(t, db, cat.ID, "Kept", 2)

	require.NoError(t, database.Seed(ctx, db))

	var categories, products int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categories))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM products").Scan(&products))
	assert.Equal(t, 1, categories)
	assert.Equal(t, 2, products)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("postgres", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}
