package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), ErrUniqueViolation)

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))

	fk := &pgconn.PgError{Code: "23503"}
	assert.NotErrorIs(t, translate(fk), ErrUniqueViolation)
}

func TestBase_UsesRequestTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectBegin()
	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, tx)
	repo := NewBadgeRepository(sqlxDB, func(ctx context.Context) *sqlx.Tx {
		tx, _ := ctx.Value(ctxKey{}).(*sqlx.Tx)
		return tx
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_badges")).
		WithArgs(int64(1), "mentor", "Mentor", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	created, err := repo.Award(ctx, 1, "mentor", "Mentor", "")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBase_GetNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM emergency_contacts WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "relationship", "created_at"}))

	c, err := repo.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBase_DeleteReportsExistence(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM emergency_contacts")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.False(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
