package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/medikom/internal/config"
	"github.com/dmitrijs2005/medikom/internal/logging"
	"github.com/dmitrijs2005/medikom/internal/models"
	"github.com/dmitrijs2005/medikom/internal/opener"
	"github.com/dmitrijs2005/medikom/internal/store"
	"github.com/google/uuid"
)

// Store is the part of store.Store the front end uses.
type Store interface {
	AddEntry(ctx context.Context, kind models.Kind, title, notes string) (int64, error)
	RemoveEntry(ctx context.Context, id int64) error
	EditTitle(ctx context.Context, id int64, title string) error
	EditNotes(ctx context.Context, id int64, notes string) error
	AddAttachment(ctx context.Context, id int64, path string) error
	RemoveAttachment(ctx context.Context, id int64, path string) error
	ListTitles(ctx context.Context) (tasks, infos []models.Overview, err error)
	GetEntry(ctx context.Context, id int64) (*models.Details, error)
}

// Opener launches a viewer for an attachment.
type Opener interface {
	Open(ctx context.Context, path string) error
}

type App struct {
	store   Store
	opener  Opener
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer

	selected     int64
	hasSelection bool
}

// NewApp opens the log file and the database named by c. Each call starts a
// new logging session. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	fileLogger, logCloser, err := logging.NewFileLogger(c.LogPath, level)
	if err != nil {
		return nil, fmt.Errorf("error opening log: %w", err)
	}
	logger := fileLogger.With("session", uuid.NewString())

	st, err := store.Open(ctx, c.DatabasePath, store.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		_ = logCloser.Close()
		return nil, err
	}
	logger.Debug(ctx, "database opened", "path", c.DatabasePath)

	a := newApp(st, opener.New(c.OpenCommand), logger, in, out)
	a.closers = []io.Closer{st, logCloser}
	return a, nil
}

func newApp(st Store, op Opener, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:  st,
		opener: op,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Close releases the database and the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run starts the REPL and blocks until the user leaves or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to medikom (type 'help' for commands)")
	_ = a.List(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Selected() (int64, bool) {
	return a.selected, a.hasSelection
}

func (a *App) selectEntry(id int64) {
	a.selected, a.hasSelection = id, true
}

func (a *App) clearSelection() {
	a.selected, a.hasSelection = 0, false
}

func (a *App) getStatus() string {
	if !a.hasSelection {
		return ""
	}
	return fmt.Sprintf("(#%d)", a.selected)
}
