package domain

import "errors"

// Sentinel errors shared across repositories and services. Controllers map these
// to HTTP status codes.
var (
	// ErrNotFound is returned when a row keyed by the given identifier does not exist
	// (including updates and deletes that affect zero rows).
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an insert collides with an existing primary
	// or unique key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrForeignKeyMissing is returned when an insert or update references a row
	// that does not exist.
	ErrForeignKeyMissing = errors.New("referenced row does not exist")

	// ErrHasDependents is returned when a delete is blocked because other rows
	// still reference the target.
	ErrHasDependents = errors.New("row has dependent records")

	// ErrInvalidInput is returned when a request fails field validation before any
	// statement is issued.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable is returned when the database cannot be reached. List
	// operations surface this instead of silently degrading to an empty result.
	ErrUnavailable = errors.New("database unavailable")
)
