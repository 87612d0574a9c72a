package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Storage and transport.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
	ErrInvalidOwner    = errors.New("invalid owner id")
	ErrQueueEmpty      = errors.New("event queue is empty")
	// ErrUnavailable means an upstream (geocoder, backend) is down or its
	// breaker is open. Callers may retry later.
	ErrUnavailable = errors.New("service unavailable")
)

// Sketch content.
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrUnknownType        = errors.New("unknown incident type")
	ErrTooFewPoints       = errors.New("line needs at least two distinct points")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Postgres SQLSTATE codes the sketch store can raise.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02" // malformed uuid or jsonb literal
	pgStringTooLong       = "22001"
)

// titleCheck is the CHECK constraint on sketches.title in schema.sql.
const titleCheck = "sketches_title_check"

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case pgCheckViolation:
			if pgErr.ConstraintName == titleCheck {
				return fmt.Errorf("%s: %w", op, ErrTitleRequired)
			}
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, ErrInvalidInput)
		case pgForeignKeyViolation, pgInvalidTextRepr, pgStringTooLong:
			return fmt.Errorf("%s: pg %s: %w", op, pgErr.Code, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
