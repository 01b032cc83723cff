package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Args)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("id", "name").
		Where(Eq("category_id", int64(3))).
		Where(Eq("status", "active")).
		Build()

	assert.Equal(t, "SELECT id, name FROM products WHERE category_id = ? AND status = ?", stmt.SQL)
	assert.Equal(t, []any{int64(3), "active"}, stmt.Args)
}

func TestBuilder_JoinOrderLimitOffset(t *testing.T) {
	stmt := From("products p").
		Select("p.id", "c.name").
		Join("JOIN categories c ON c.id = p.category_id").
		Where(Contains("p.name", "Pro")).
		OrderBy("p.id", Asc).
		Limit(15).
		Offset(30).
		Build()

	assert.Equal(t,
		"SELECT p.id, c.name FROM products p JOIN categories c ON c.id = p.category_id "+
			"WHERE p.name LIKE ? ESCAPE '!' ORDER BY p.id ASC LIMIT ? OFFSET ?",
		stmt.SQL)
	assert.Equal(t, []any{"%Pro%", int64(15), int64(30)}, stmt.Args)
}

func TestBuilder_ZeroOffsetOmitted(t *testing.T) {
	stmt := From("products").OrderBy("id", Desc).Limit(10).Build()

	assert.Equal(t, "SELECT * FROM products ORDER BY id DESC LIMIT ?", stmt.SQL)
	assert.Equal(t, []any{int64(10)}, stmt.Args)
}

func TestBuilder_CountDropsPaginationAndOrdering(t *testing.T) {
	base := From("products p").
		Select("p.id").
		Join("JOIN categories c ON c.id = p.category_id").
		Where(Eq("p.status", "active")).
		OrderBy("p.id", Asc).
		Limit(15).
		Offset(15)

	stmt := base.Count().Build()

	assert.Equal(t,
		"SELECT COUNT(*) FROM products p JOIN categories c ON c.id = p.category_id WHERE p.status = ?",
		stmt.SQL)
	assert.Equal(t, []any{"active"}, stmt.Args)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("id")
	filtered := base.Where(Eq("status", "active"))

	assert.Equal(t, "SELECT id FROM products", base.Build().SQL)
	assert.Equal(t, "SELECT id FROM products WHERE status = ?", filtered.Build().SQL)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "50!% off", EscapeLike("50% off"))
	assert.Equal(t, "snake!_case", EscapeLike("snake_case"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
