package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/dbx"
	"github.com/dmitrijs2005/medikom/internal/models"
	"github.com/dmitrijs2005/medikom/internal/repositories/configuration"
)

// AllocateNextID returns the identifier the next entry will get. It does not
// advance the allocator; AddEntry does.
func (s *Store) AllocateNextID(ctx context.Context) (int64, error) {
	return s.repos.Configuration(s.db).Get(ctx, configuration.OptionCurrentID)
}

// AddEntry stores a new entry under the next allocated id and advances the
// allocator, atomically. It returns the assigned id.
func (s *Store) AddEntry(ctx context.Context, kind models.Kind, title, notes string) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %d", common.ErrorInvalidKind, int(kind))
	}

	id, err := dbx.QueryTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		cfg := s.repos.Configuration(tx)

		id, err := cfg.Get(ctx, configuration.OptionCurrentID)
		if err != nil {
			return 0, err
		}

		e := &models.Entry{ID: id, Kind: kind, LastModified: s.timestamp(), Title: title, Notes: notes}
		if err := s.repos.Entries(tx).Insert(ctx, e); err != nil {
			return 0, err
		}

		if err := cfg.Set(ctx, configuration.OptionCurrentID, id+1); err != nil {
			return 0, err
		}
		return id, nil
	})
	if err != nil {
		return 0, fmt.Errorf("add entry: %w", err)
	}

	s.logger.Info(ctx, kind.String()+" created", "id", id, "title", title)
	return id, nil
}

// RemoveEntry deletes an entry together with its attachments. Removing a
// missing id is a no-op.
func (s *Store) RemoveEntry(ctx context.Context, id int64) error {
	var (
		found    bool
		detached int64
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		detached, err = s.repos.Attachments(tx).DeleteByEntryID(ctx, id)
		if err != nil {
			return err
		}
		found, err = s.repos.Entries(tx).DeleteByID(ctx, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("remove entry #%d: %w", id, err)
	}

	if !found {
		s.logger.Warn(ctx, "entry to delete not found", "id", id)
		return nil
	}
	s.logger.Info(ctx, "entry deleted", "id", id, "attachments", detached)
	return nil
}

// EditTitle renames an entry. Editing a missing id is a no-op.
func (s *Store) EditTitle(ctx context.Context, id int64, title string) error {
	var found bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		found, err = s.repos.Entries(tx).UpdateTitle(ctx, id, title, s.timestamp())
		return err
	})
	if err != nil {
		return fmt.Errorf("edit title of #%d: %w", id, err)
	}

	if !found {
		s.logger.Warn(ctx, "entry to rename not found", "id", id)
		return nil
	}
	s.logger.Info(ctx, "entry renamed", "id", id, "title", title)
	return nil
}

// EditNotes replaces the notes of an entry. Editing a missing id is a no-op.
func (s *Store) EditNotes(ctx context.Context, id int64, notes string) error {
	var found bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		found, err = s.repos.Entries(tx).UpdateNotes(ctx, id, notes, s.timestamp())
		return err
	})
	if err != nil {
		return fmt.Errorf("edit notes of #%d: %w", id, err)
	}

	if !found {
		s.logger.Warn(ctx, "entry to edit not found", "id", id)
		return nil
	}
	s.logger.Info(ctx, "entry edited", "id", id)
	return nil
}

// AddAttachment attaches path to an entry and bumps its modification time.
// A second attach of the same path fails with common.ErrorDuplicateAttachment
// and leaves the database unchanged.
func (s *Store) AddAttachment(ctx context.Context, id int64, path string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Attachments(tx).Insert(ctx, id, path); err != nil {
			return err
		}
		_, err := s.repos.Entries(tx).Touch(ctx, id, s.timestamp())
		return err
	})
	if err != nil {
		return fmt.Errorf("add attachment to #%d: %w", id, err)
	}

	s.logger.Info(ctx, "attachment added", "id", id, "path", path)
	return nil
}

// RemoveAttachment detaches path from the entry and bumps its modification
// time. Only the given entry is affected, even if other entries reference
// the same path.
func (s *Store) RemoveAttachment(ctx context.Context, id int64, path string) error {
	var found bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		found, err = s.repos.Attachments(tx).Delete(ctx, id, path)
		if err != nil {
			return err
		}
		_, err = s.repos.Entries(tx).Touch(ctx, id, s.timestamp())
		return err
	})
	if err != nil {
		return fmt.Errorf("remove attachment from #%d: %w", id, err)
	}

	if !found {
		s.logger.Warn(ctx, "attachment to remove not found", "id", id, "path", path)
		return nil
	}
	s.logger.Info(ctx, "attachment removed", "id", id, "path", path)
	return nil
}

type titles struct {
	tasks []models.Overview
	infos []models.Overview
}

// ListTitles returns the tasks and the information entries, each most
// recently modified first. Both lists come from one snapshot.
func (s *Store) ListTitles(ctx context.Context) (tasks, infos []models.Overview, err error) {
	res, err := dbx.QueryTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (titles, error) {
		repo := s.repos.Entries(tx)

		var (
			out titles
			err error
		)
		if out.tasks, err = repo.ListByKind(ctx, models.KindTask); err != nil {
			return titles{}, err
		}
		if out.infos, err = repo.ListByKind(ctx, models.KindInformation); err != nil {
			return titles{}, err
		}
		return out, nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("list titles: %w", err)
	}
	return res.tasks, res.infos, nil
}

// GetEntry returns an entry with its attachment paths, or
// common.ErrorNotFound.
func (s *Store) GetEntry(ctx context.Context, id int64) (*models.Details, error) {
	d, err := dbx.QueryTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Details, error) {
		e, err := s.repos.Entries(tx).GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		paths, err := s.repos.Attachments(tx).ListByEntryID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.Details{Entry: *e, Attachments: paths}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get entry #%d: %w", id, err)
	}
	return d, nil
}
