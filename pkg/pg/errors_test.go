package pg_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kbrn/pkg/pg"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert company: %w", &pgconn.PgError{Code: "23505", ConstraintName: "companies_brn_key"})
	foreign := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "companies_brn_digits"}
	other := errors.New("boom")

	tests := []struct {
		name  string
		check func(error) bool
		match []error
		miss  []error
	}{
		{"not found", pg.IsNotFoundError, []error{pgx.ErrNoRows, fmt.Errorf("lookup: %w", pgx.ErrNoRows)}, []error{nil, other, unique}},
		{"tx closed", pg.IsTxClosedError, []error{pgx.ErrTxClosed}, []error{nil, other}},
		{"duplicate key", pg.IsDuplicateKeyError, []error{unique}, []error{nil, other, foreign, check}},
		{"foreign key", pg.IsForeignKeyViolationError, []error{foreign}, []error{nil, unique}},
		{"check violation", pg.IsCheckViolationError, []error{check}, []error{nil, unique, foreign}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, err := range tt.match {
				assert.True(t, tt.check(err), "%v", err)
			}
			for _, err := range tt.miss {
				assert.False(t, tt.check(err), "%v", err)
			}
		})
	}
}
