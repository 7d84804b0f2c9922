// internal/adapters/db/errors.go
package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

// Postgres SQLSTATE codes the repositories care about
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
)

// classify maps driver errors onto domain error kinds. Domain errors and
// context errors pass through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WrapError(domain.KindNotFound, err, "Record not found.")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable, pgQueryCanceled:
			return domain.WrapError(domain.KindTransactionConflict, err,
				"The inventory is busy, please retry: %s", pgErr.Message)
		case pgUniqueViolation:
			return domain.WrapError(domain.KindValidation, err,
				"A record with the same identity already exists: %s", pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return domain.WrapError(domain.KindValidation, err,
				"The record is still referenced by %s.", pgErr.TableName)
		case pgCheckViolation:
			return domain.WrapError(domain.KindValidation, err,
				"Constraint %s violated.", pgErr.ConstraintName)
		}
	}

	return domain.WrapError(domain.KindPersistence, err, "Database error: %s", err)
}
