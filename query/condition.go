package query

import (
	"fmt"
	"strings"
)

// likeEscape is used as the LIKE escape character. A backslash would need
// different quoting on SQLite and MySQL; '!' reads the same on both.
const likeEscape = "!"

// Condition is a WHERE clause fragment with positional (?) arguments.
type Condition interface {
	SQL() (string, []any)
}

type eqCondition struct {
	field string
	value any
}

// Eq creates an equality condition: Eq("status", "active") -> "status = ?".
func Eq(field string, value any) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL() (string, []any) {
	return fmt.Sprintf("%s = ?", c.field), []any{c.value}
}

type containsCondition struct {
	field  string
	substr string
}

// Contains matches rows whose field contains substr anywhere.
// Wildcards inside substr are matched literally.
func Contains(field, substr string) Condition {
	return &containsCondition{field: field, substr: substr}
}

func (c *containsCondition) SQL() (string, []any) {
	pattern := "%" + EscapeLike(c.substr) + "%"
	return fmt.Sprintf("%s LIKE ? ESCAPE '%s'", c.field, likeEscape), []any{pattern}
}

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return r.Replace(s)
}
