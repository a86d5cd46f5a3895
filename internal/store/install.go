package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/dbx"
	"github.com/dmitrijs2005/medikom/internal/logging"
	"github.com/dmitrijs2005/medikom/internal/store/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUp is a seam for testing goose.UpContext.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// init probes the allocator row. A database without the schema is installed;
// any other failure is fatal.
func (s *Store) init(ctx context.Context) error {
	_, err := s.AllocateNextID(ctx)
	switch {
	case err == nil:
		return nil
	case dbx.IsMissingTable(err):
		if err := s.Install(ctx); err != nil {
			return fmt.Errorf("%w: %w", common.ErrorInitialization, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: probe current id: %w", common.ErrorInitialization, err)
	}
}

// Install creates the configuration, entries and attachments tables and
// seeds the allocator with 0.
func (s *Store) Install(ctx context.Context) error {
	s.logger.Info(ctx, "installing database")

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, l: s.logger})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUp(ctx, s.db, "."); err != nil {
		s.logger.Error(ctx, "database installation failed", "error", err)
		return fmt.Errorf("install schema: %w", err)
	}

	seeded, err := s.repos.Configuration(s.db).List(ctx)
	if err != nil {
		return fmt.Errorf("read configuration after install: %w", err)
	}
	s.logger.Info(ctx, "database installation finished", "configuration", seeded)
	return nil
}

// gooseLogger routes goose output into the application log.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.l.Error(g.ctx, msg, "component", "goose")
	panic(msg)
}
