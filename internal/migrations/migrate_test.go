package migrations

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersions_Sorted(t *testing.T) {
	names, err := Versions()
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_schema.sql", "0002_seed.sql"}, names)
}

func TestMigrate_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for _, v := range []string{"0001_schema", "0002_seed"} {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM schema_migrations WHERE version = $1")).
			WithArgs(v).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}

	err = Migrate(context.Background(), sqlxDB)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_AppliesPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM schema_migrations WHERE version = $1")).
		WithArgs("0001_schema").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM schema_migrations WHERE version = $1")).
		WithArgs("0002_seed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO skill_categories")).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")).
		WithArgs("0002_seed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = Migrate(context.Background(), sqlxDB)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_ExecErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM schema_migrations WHERE version = $1")).
		WithArgs("0001_schema").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = Migrate(context.Background(), sqlxDB)
	assert.ErrorContains(t, err, "exec migration 0001_schema.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
