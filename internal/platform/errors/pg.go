package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCode

import (
	"context"
	stderrs "errors"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we care about
const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrUndefinedTable            = "42P01"
	pgErrSyntaxError               = "42601"

	pgErrAdminShutdown      = "57P01"
	pgErrCrashShutdown      = "57P02"
	pgErrCannotConnectNow   = "57P03"
	pgErrConnectionFailure  = "08006"
	pgErrConnectionRejected = "08004"
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsConnectionLoss reports whether the error looks like a lost or broken
// connection rather than a statement-level failure
func IsConnectionLoss(err error) bool {
	if err == nil {
		return false
	}
	root := Root(err)

	var netErr net.Error
	if stderrs.As(root, &netErr) {
		return true
	}
	if stderrs.Is(root, io.EOF) || stderrs.Is(root, io.ErrUnexpectedEOF) {
		return true
	}

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case pgErrAdminShutdown, pgErrCrashShutdown, pgErrCannotConnectNow,
			pgErrConnectionFailure, pgErrConnectionRejected:
			return true
		}
		return false
	}

	s := strings.ToLower(root.Error())
	switch {
	case strings.Contains(s, "conn closed"),
		strings.Contains(s, "connection reset"),
		strings.Contains(s, "broken pipe"),
		strings.Contains(s, "unexpected eof"):
		return true
	}
	return false
}

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag
// !ok means err wasn't a PgError; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(Root(err), &pgErr) {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrForeignKeyViolation, pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true

	case pgErrNotNullViolation, pgErrCheckViolation, pgErrUniqueViolation:
		// constraint violations map to query errors for this append-only store
		return ErrorCodeDB, true

	case pgErrUndefinedTable, pgErrSyntaxError:
		return ErrorCodeDB, true

	case pgErrAdminShutdown, pgErrCrashShutdown, pgErrCannotConnectNow,
		pgErrConnectionFailure, pgErrConnectionRejected:
		return ErrorCodeUnavailable, true
	}

	return ErrorCodeDB, true
}

// FromPostgres wraps a store error with a mapped ErrorCode and message.
// Cancellation is passed through untouched; connection loss maps to
// Unavailable; everything else is a query-level DB error
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return err
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	if IsConnectionLoss(err) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
