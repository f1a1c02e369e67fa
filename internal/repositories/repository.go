package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/logger"
)

// ErrUniqueViolation is returned when an insert clashes with a unique index.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

// TxGetter returns the transaction bound to the request, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// base carries the connection and optional transaction lookup shared by repositories.
type base struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// executor returns the request transaction when one is active, otherwise the pool.
func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

// get runs a single-row query. No rows is reported as found == false.
func (b base) get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, b.executor(ctx), dest, query, args...)
	logQuery(query, args, dest, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translate(err)
	}
	return true, nil
}

// selectAll runs a multi-row query.
func (b base) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, b.executor(ctx), dest, query, args...)
	logQuery(query, args, dest, err)
	return translate(err)
}

// exec runs a statement and returns the number of affected rows.
func (b base) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := b.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return rowsAffected, translate(err)
}

// translate maps driver errors onto repository errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUniqueViolation
	}
	return err
}

// logQuery logs the query in a single line along with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
