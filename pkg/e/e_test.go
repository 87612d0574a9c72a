package e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: ErrDeadline},
		{name: "canceled", err: context.Canceled, want: ErrCanceled},
		{name: "no rows", err: pgx.ErrNoRows, want: ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: pgUniqueViolation}, want: ErrUniqueViolation},
		{name: "blank title", err: &pgconn.PgError{Code: pgCheckViolation, ConstraintName: titleCheck}, want: ErrTitleRequired},
		{name: "other check", err: &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "sketches_other_check"}, want: ErrInvalidInput},
		{name: "bad uuid literal", err: &pgconn.PgError{Code: pgInvalidTextRepr}, want: ErrInvalidInput},
		{name: "too long", err: &pgconn.PgError{Code: pgStringTooLong}, want: ErrInvalidInput},
		{name: "unknown pg code", err: &pgconn.PgError{Code: "XX000"}, want: ErrInternal},
		{name: "anything else", err: errors.New("boom"), want: ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := WrapError(context.Background(), "postgres.Sketch.Create", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("WrapError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}

	if WrapError(context.Background(), "op", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}
