// Package store is the data-access core of medikom.
//
// A Store owns the SQLite database holding the configuration row with the id
// allocator, the entries and their attachments. Every mutation runs as one
// transaction: the allocator is never advanced without the entry existing,
// and an entry is never deleted while its attachments survive.
//
// Writes that target a missing entry are no-ops rather than errors; they are
// reported at warning level in the log. The only error a caller is expected
// to handle is common.ErrorDuplicateAttachment.
//
// The Store keeps a single database connection, so concurrent callers are
// serialized by database/sql.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/filex"
	"github.com/dmitrijs2005/medikom/internal/logging"

	_ "modernc.org/sqlite"
)

// DefaultPath is the database file used when nothing else is configured.
const DefaultPath = "medikom.sqlite"

type Store struct {
	db     *sql.DB
	repos  RepositoryManager
	logger logging.Logger
	now    func() time.Time
}

type Option func(*Store)

// WithLogger sets the logger receiving operation records.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithRepositories replaces the SQLite repositories.
func WithRepositories(m RepositoryManager) Option {
	return func(s *Store) { s.repos = m }
}

// WithClock replaces time.Now as the source of modification times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// DSN builds the driver connection string for a database file. Foreign keys
// are enabled on every connection. Each path element is escaped, so '?', '#'
// and '%' stay part of the file name.
func DSN(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "file:" + strings.Join(parts, "/") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Open opens (and on first use installs) the database at path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInitialization, err)
	}

	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", common.ErrorInitialization, path, err)
	}

	s, err := New(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database handle, probing it and installing the schema
// when it is missing. The caller's DSN is responsible for enabling foreign
// keys.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	s := &Store{
		db:     db,
		repos:  SQLiteRepositoryManager{},
		logger: logging.NewDiscardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.init(ctx); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// timestamp returns the current time at the resolution it is stored with.
func (s *Store) timestamp() time.Time {
	return time.Unix(s.now().Unix(), 0)
}
