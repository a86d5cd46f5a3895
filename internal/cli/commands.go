package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/filex"
	"github.com/dmitrijs2005/medikom/internal/models"
)

var (
	errEmptyTitle    = errors.New("title must not be empty")
	errNoAttachment  = errors.New("no such attachment")
	errNotAFile      = errors.New("not an existing file")
	errDeleteAborted = errors.New("delete aborted")
)

// fail logs err and reports it to the user. It returns err so handlers can
// end with it.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Error(ctx, op+" failed", "error", err)
	fmt.Fprintf(a.out, "Error: %s\n", err)
	return err
}

// List prints the overview of both entry kinds.
func (a *App) List(ctx context.Context) error {
	tasks, infos, err := a.store.ListTitles(ctx)
	if err != nil {
		return a.fail(ctx, "list", err)
	}
	fmt.Fprintln(a.out, renderOverview(tasks, infos, a.selected, a.hasSelection, terminalWidth()))
	return nil
}

// Show prints one entry and selects it.
func (a *App) Show(ctx context.Context, id int64) error {
	d, err := a.store.GetEntry(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintf(a.out, "No entry #%d\n", id)
		if a.hasSelection && a.selected == id {
			a.clearSelection()
		}
		return err
	}
	if err != nil {
		return a.fail(ctx, "show", err)
	}

	a.selectEntry(id)
	fmt.Fprint(a.out, renderDetails(d))
	return nil
}

// AddEntry prompts for a title and creates an entry of the given kind.
func (a *App) AddEntry(ctx context.Context, kind models.Kind) error {
	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title of the new %s (start with ! for priority)", kind), a.out)
	if err != nil {
		return a.fail(ctx, "add "+kind.String(), err)
	}
	if title == "" {
		fmt.Fprintln(a.out, errEmptyTitle)
		return errEmptyTitle
	}

	id, err := a.store.AddEntry(ctx, kind, title, "")
	if err != nil {
		return a.fail(ctx, "add "+kind.String(), err)
	}
	return a.Show(ctx, id)
}

// EditTitle prompts for a new title.
func (a *App) EditTitle(ctx context.Context, id int64) error {
	if err := a.Show(ctx, id); err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "New title", a.out)
	if err != nil {
		return a.fail(ctx, "edit title", err)
	}
	if title == "" {
		fmt.Fprintln(a.out, errEmptyTitle)
		return errEmptyTitle
	}

	if err := a.store.EditTitle(ctx, id, title); err != nil {
		return a.fail(ctx, "edit title", err)
	}
	return a.Show(ctx, id)
}

// EditNotes prompts for the new notes, replacing the old ones.
func (a *App) EditNotes(ctx context.Context, id int64) error {
	if err := a.Show(ctx, id); err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "New notes", a.out)
	if err != nil {
		return a.fail(ctx, "edit notes", err)
	}

	if err := a.store.EditNotes(ctx, id, notes); err != nil {
		return a.fail(ctx, "edit notes", err)
	}
	return a.Show(ctx, id)
}

// Attach prompts for a file path and attaches it. Attaching a file twice is
// silently ignored.
func (a *App) Attach(ctx context.Context, id int64) error {
	if err := a.Show(ctx, id); err != nil {
		return err
	}

	path, err := GetSimpleText(a.reader, "Path of the file to attach", a.out)
	if err != nil {
		return a.fail(ctx, "attach", err)
	}
	if path == "" {
		return a.Show(ctx, id)
	}

	ok, err := filex.IsRegularFile(path)
	if err != nil {
		return a.fail(ctx, "attach", err)
	}
	if !ok {
		fmt.Fprintf(a.out, "%s: %s\n", path, errNotAFile)
		return errNotAFile
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	err = a.store.AddAttachment(ctx, id, path)
	switch {
	case errors.Is(err, common.ErrorDuplicateAttachment):
		a.logger.Debug(ctx, "attachment already present", "id", id, "path", path)
	case err != nil:
		return a.fail(ctx, "attach", err)
	}
	return a.Show(ctx, id)
}

// attachment returns the n-th attachment path of an entry, counting from 1.
func (a *App) attachment(ctx context.Context, id int64, n int) (string, error) {
	d, err := a.store.GetEntry(ctx, id)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(d.Attachments) {
		return "", fmt.Errorf("%w: #%d has %d attachment(s)", errNoAttachment, id, len(d.Attachments))
	}
	return d.Attachments[n-1], nil
}

// Detach removes the n-th attachment of an entry.
func (a *App) Detach(ctx context.Context, id int64, n int) error {
	path, err := a.attachment(ctx, id, n)
	if err != nil {
		return a.fail(ctx, "detach", err)
	}
	if err := a.store.RemoveAttachment(ctx, id, path); err != nil {
		return a.fail(ctx, "detach", err)
	}
	return a.Show(ctx, id)
}

// OpenAttachment opens the n-th attachment of an entry with the external
// viewer.
func (a *App) OpenAttachment(ctx context.Context, id int64, n int) error {
	path, err := a.attachment(ctx, id, n)
	if err != nil {
		return a.fail(ctx, "open", err)
	}
	if err := a.opener.Open(ctx, path); err != nil {
		return a.fail(ctx, "open", err)
	}
	a.logger.Info(ctx, "attachment opened", "id", id, "path", path)
	return nil
}

// Delete asks for confirmation and removes the entry with its attachments.
func (a *App) Delete(ctx context.Context, id int64) error {
	d, err := a.store.GetEntry(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintf(a.out, "No entry #%d\n", id)
		return err
	}
	if err != nil {
		return a.fail(ctx, "delete", err)
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete #%d %q?", id, d.Title), a.out) {
		fmt.Fprintln(a.out, "Nothing deleted.")
		return errDeleteAborted
	}

	if err := a.store.RemoveEntry(ctx, id); err != nil {
		return a.fail(ctx, "delete", err)
	}
	a.clearSelection()
	return a.List(ctx)
}
