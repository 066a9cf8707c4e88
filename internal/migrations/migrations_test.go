package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"00001_users.sql",
		"00002_stations.sql",
		"00003_recipes.sql",
		"00004_prep_items.sql",
		"00005_submitted_prep_items.sql",
	}, files)

	for _, f := range files {
		body, err := fs.ReadFile(Migrations, f)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", f)
		assert.Contains(t, string(body), "-- +goose Down", f)
	}
}

func TestUp_Success(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	assert.NoError(t, Up(context.Background(), db))
}

func TestUp_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	assert.EqualError(t, Up(context.Background(), db), "boom")
}
