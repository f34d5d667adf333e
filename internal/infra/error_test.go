//go:build unit

package infra_test

import (
	"testing"

	"ootd-commerce/internal/infra"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expected: infra.KindNotFound},
		{name: "wrapped no rows", err: errors.Wrap(pgx.ErrNoRows, "scan"), expected: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, expected: infra.KindCheckViolated},
		{name: "numeric out of range", err: &pgconn.PgError{Code: "22003"}, expected: infra.KindCheckViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: infra.KindConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: infra.KindConflict},
		{name: "other sqlstate", err: &pgconn.PgError{Code: "42P01"}, expected: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, expected: infra.KindDBFailure},
		{name: "nil", err: nil, expected: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, infra.ClassifyErr(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	t.Run("explicit kind overrides classification", func(t *testing.T) {
		err := infra.WrapRepoErr("coupon locked", assert.AnError, infra.KindConflict)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("message carries kind and cause", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505", Message: "duplicate key"})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Contains(t, err.Error(), "DUPLICATE_KEY: failed to create user")
	})

	t.Run("IsKind is false for foreign errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
	})
}
