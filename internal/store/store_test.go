package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/logging"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances one second on every reading.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func (c *fakeClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func newBufferLogger() (logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return logging.NewSlogLogger(slog.New(h)), &buf
}

func openTestStore(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medikom.sqlite")
	s, err := Open(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_InstallsSchemaOnFirstRun(t *testing.T) {
	log, buf := newBufferLogger()
	s, _ := openTestStore(t, WithLogger(log))

	for _, name := range []string{"configuration", "entries", "attachments", "goose_db_version"} {
		assert.True(t, tableExists(t, s.db, name), "table %s must exist", name)
	}

	id, err := s.AllocateNextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	assert.Contains(t, buf.String(), `msg="installing database"`)
	assert.Contains(t, buf.String(), `msg="database installation finished" configuration=map[current_id:0]`)
}

func TestOpen_ReopenKeepsDataAndSkipsInstall(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "medikom.sqlite")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.AddEntry(ctx, 0, "Buy milk", "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	orig := gooseUp
	gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		t.Fatal("installation must not run on an installed database")
		return nil
	}
	t.Cleanup(func() { gooseUp = orig })

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	id, err := s.AllocateNextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestOpen_InstallFailureIsFatal(t *testing.T) {
	orig := gooseUp
	gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return errors.New("disk full")
	}
	t.Cleanup(func() { gooseUp = orig })

	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "medikom.sqlite"))
	require.ErrorIs(t, err, common.ErrorInitialization)
	require.ErrorContains(t, err, "disk full")
}

func TestNew_ProbeFailureIsFatalNotInstall(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value FROM configuration`).
		WithArgs("current_id").
		WillReturnError(errors.New("database disk image is malformed"))

	orig := gooseUp
	gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		t.Fatal("installation must not run after an unexpected probe failure")
		return nil
	}
	t.Cleanup(func() { gooseUp = orig })

	_, err = New(context.Background(), db)
	require.ErrorIs(t, err, common.ErrorInitialization)
	require.ErrorContains(t, err, "malformed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_MissingAllocatorRowIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medikom.sqlite")
	db, err := sql.Open("sqlite", DSN(path))
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE configuration (option TEXT PRIMARY KEY, value INTEGER NOT NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(context.Background(), path)
	require.ErrorIs(t, err, common.ErrorInitialization)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestOpen_UnusableParentDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Open(context.Background(), filepath.Join(blocker, "medikom.sqlite"))
	require.ErrorIs(t, err, common.ErrorInitialization)
}

func TestDSN_EscapesPathElements(t *testing.T) {
	assert.Equal(t,
		"file:data/notes%231/what%3F%25.sqlite?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		DSN("data/notes#1/what?%.sqlite"))
}

func TestOpen_FileNameWithURIMetaCharacters(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"notes#1.sqlite", "what?.sqlite", "100%.sqlite", "a b.sqlite"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)

			s, err := Open(ctx, path)
			require.NoError(t, err)
			_, err = s.AddEntry(ctx, 0, "x", "")
			require.NoError(t, err)

			var fk int
			require.NoError(t, s.db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
			assert.Equal(t, 1, fk, "foreign keys must stay enabled")
			require.NoError(t, s.Close())

			assert.FileExists(t, path)
			files, err := os.ReadDir(dir)
			require.NoError(t, err)
			for _, f := range files {
				assert.True(t, strings.HasPrefix(f.Name(), name), "unexpected file %s", f.Name())
			}
		})
	}
}

func TestInstall_IsIdempotent(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	_, err := s.AddEntry(ctx, 0, "keep me", "")
	require.NoError(t, err)
	require.NoError(t, s.Install(ctx))

	id, err := s.AllocateNextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "re-running installation must not reset the allocator")
}
