// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrate_NilDB(t *testing.T) {
	_, err := Migrate(context.Background(), nil, DialectPostgres)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, "mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(assert.AnError)
	mock.ExpectExec(".*").WillReturnError(assert.AnError)

	_, err = Migrate(context.Background(), db, DialectPostgres)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_EmbeddedDialectsHaveSameVersions(t *testing.T) {
	pg, err := embedMigrations.ReadDir(DialectPostgres)
	require.NoError(t, err)
	lite, err := embedMigrations.ReadDir(DialectSQLite)
	require.NoError(t, err)

	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i].Name(), lite[i].Name())
	}
}

func TestMigrate_SQLiteUpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", "file:migrate_test?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()

	applied, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	assert.Equal(t, int64(1), applied[0].Version)
	assert.Equal(t, int64(2), applied[1].Version)

	again, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Empty(t, again)

	for _, table := range []string{"users", "cards", "card_likes"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
	}
}
