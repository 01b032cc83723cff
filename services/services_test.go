package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"productcatalog/utils"
)

func TestMain(m *testing.M) {
	utils.PasswordHashCost = bcrypt.MinCost
	m.Run()
}

// queryCounter counts statements that mention a table.
type queryCounter struct {
	mu      sync.Mutex
	queries []string
}

func (c *queryCounter) trace(_ context.Context, query string, _ []any) {
	c.mu.Lock()
	c.queries = append(c.queries, query)
	c.mu.Unlock()
}

func (c *queryCounter) count(table string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, q := range c.queries {
		if strings.Contains(q, table) {
			n++
		}
	}
	return n
}

func tracedExecutor(db *sql.DB) (SQLExecutor, *queryCounter) {
	counter := &queryCounter{}
	return NewTracingExecutor(NewSQLExecutor(db), counter.trace), counter
}
