package configuration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "configuration.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE configuration (
  option TEXT PRIMARY KEY,
  value  INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, OptionCurrentID, 0))

	v, err := r.Get(ctx, OptionCurrentID)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}

func TestGet_NotExists_ReturnsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, OptionCurrentID, 3))
	require.NoError(t, r.Set(ctx, OptionCurrentID, 4))

	v, err := r.Get(ctx, OptionCurrentID)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM configuration`).Scan(&n))
	require.Equal(t, 1, n, "upsert must keep a single row per option")
}

func TestList_ReturnsAllPairs(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", 1))
	require.NoError(t, r.Set(ctx, "b", 2))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, m)
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), "k")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorNotFound)
	require.Contains(t, err.Error(), "failed to get configuration[k]")
}

func TestSet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	err := r.Set(context.Background(), "k", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set configuration[k]")
}

func TestList_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.List(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list configuration")
}

func TestGet_MissingTable(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "empty.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = NewSQLiteRepository(db).Get(context.Background(), OptionCurrentID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such table")
}
