package services

import "strings"

// isDuplicateKeyError recognises unique constraint violations from SQLite and MySQL.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "1062")
}
