// Package query builds parameterised SELECT statements for database/sql.
package query

import (
	"fmt"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Statement is a built SQL string with its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

type orderTerm struct {
	column string
	dir    Direction
}

// Builder is an immutable SELECT builder. Every method returns a copy, so a
// base builder can be shared and extended per request.
type Builder struct {
	table        string
	selectCols   []string
	joins        []string
	whereClauses []Condition
	orderBy      []orderTerm
	limitVal     int64
	offsetVal    int64
}

// From creates a new Builder for the table expression (e.g. "products p").
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns to the select list.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Join appends a raw join clause, e.g. "JOIN categories c ON c.id = p.category_id".
func (b *Builder) Join(clause string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, clause)
	return nb
}

// Where adds a condition. Conditions are combined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy appends a sort term; earlier terms take precedence.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{column: column, dir: direction})
	return nb
}

func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count returns a COUNT(*) builder with the same FROM, JOIN and WHERE parts.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.orderBy = nil
	nb.limitVal = 0
	nb.offsetVal = 0
	return nb
}

// Build renders the statement.
func (b *Builder) Build() Statement {
	var sql strings.Builder
	args := make([]any, 0, len(b.whereClauses)+2)

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, j := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(j)
	}

	if len(b.whereClauses) > 0 {
		parts := make([]string, 0, len(b.whereClauses))
		for _, c := range b.whereClauses {
			fragment, condArgs := c.SQL()
			parts = append(parts, fragment)
			args = append(args, condArgs...)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, o := range b.orderBy {
			if o.dir == Desc {
				terms = append(terms, o.column+" DESC")
			} else {
				terms = append(terms, o.column+" ASC")
			}
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	// SQLite only accepts OFFSET after a LIMIT.
	if b.limitVal > 0 {
		sql.WriteString(" LIMIT ?")
		args = append(args, b.limitVal)
		if b.offsetVal > 0 {
			sql.WriteString(" OFFSET ?")
			args = append(args, b.offsetVal)
		}
	}

	return Statement{SQL: sql.String(), Args: args}
}

func (b *Builder) clone() *Builder {
	nb := *b
	nb.selectCols = append([]string(nil), b.selectCols...)
	nb.joins = append([]string(nil), b.joins...)
	nb.whereClauses = append([]Condition(nil), b.whereClauses...)
	nb.orderBy = append([]orderTerm(nil), b.orderBy...)
	return &nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nArgs: %v", stmt.SQL, stmt.Args)
}
