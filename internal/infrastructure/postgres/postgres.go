package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on unique-constraint violations (duplicate
	// slug or email).
	ErrDuplicate = errors.New("already exists")
)

const uniqueViolation = "23505"

// translateErr maps driver errors onto the repository sentinels and wraps
// everything else with the query for server-side logs. The wrapped detail
// never crosses the API boundary.
func translateErr(err error, query string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return fmt.Errorf("query %q failed: %w", compactQuery(query), err)
}

func compactQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

func logQueryErr(log *logrus.Logger, err error, query string, args []any) {
	if log == nil || err == nil {
		return
	}
	fields := logrus.Fields{"query": compactQuery(query), "params": args}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["code"] = pgErr.Code
	}
	log.WithError(err).WithFields(fields).Error("database query failed")
}

// WithTx runs fn inside a transaction, rolling back on error. None of the
// request handlers span multiple statements today.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
