package dbx

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// resultCode extracts the SQLite result code from a driver error.
func resultCode(err error) (int, bool) {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code(), true
	}
	return 0, false
}

// matches reports whether err carries one of the extended codes. When the
// driver reported only the primary code (or the error was flattened while
// wrapping) the message is checked instead.
func matches(err error, primary int, msg string, extended ...int) bool {
	if err == nil {
		return false
	}
	if code, ok := resultCode(err); ok {
		for _, c := range extended {
			if code == c {
				return true
			}
		}
		if code&0xff != primary {
			return false
		}
	}
	return strings.Contains(err.Error(), msg)
}

// IsUniqueViolation checks if an error is a UNIQUE or PRIMARY KEY constraint
// violation.
func IsUniqueViolation(err error) bool {
	return matches(err, sqlite3.SQLITE_CONSTRAINT, "UNIQUE constraint failed",
		sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE)
}

// IsForeignKeyViolation checks if an error is a FOREIGN KEY constraint
// violation.
func IsForeignKeyViolation(err error) bool {
	return matches(err, sqlite3.SQLITE_CONSTRAINT, "FOREIGN KEY constraint failed",
		sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY)
}

// IsMissingTable checks if a statement failed because a table does not exist.
func IsMissingTable(err error) bool {
	return matches(err, sqlite3.SQLITE_ERROR, "no such table")
}
