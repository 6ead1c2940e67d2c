package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"eventcollection/internal/domain"
)

// PostgreSQL error codes we classify. Anything in class 08 is a connection
// failure.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// unavailable reports whether err indicates the database cannot be reached.
func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Class() == "08"
}

// writeError translates a driver error from an INSERT or UPDATE into the
// domain sentinels: unique violations become ErrDuplicateKey and foreign-key
// violations ErrForeignKeyMissing.
func writeError(err error) error {
	if err == nil {
		return nil
	}
	if unavailable(err) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, pqErr.Constraint)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrForeignKeyMissing, pqErr.Constraint)
		}
	}
	return err
}

// deleteError translates a driver error from a DELETE. A foreign-key violation
// here means dependent rows still reference the target.
func deleteError(err error) error {
	if err == nil {
		return nil
	}
	if unavailable(err) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrHasDependents, pqErr.Constraint)
	}
	return err
}

// readError translates a driver error from a SELECT.
func readError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if unavailable(err) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return err
}
