package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/dbx"
	"github.com/dmitrijs2005/medikom/internal/models"
)

var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Entry) error {
	query := `INSERT INTO entries (id, kind, last_modified, title, notes) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, int(e.Kind), e.LastModified.Unix(), e.Title, e.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateTitle(ctx context.Context, id int64, title string, ts time.Time) (bool, error) {
	return r.exec(ctx, "update title", `UPDATE entries SET title = ?, last_modified = ? WHERE id = ?`, title, ts.Unix(), id)
}

func (r *SQLiteRepository) UpdateNotes(ctx context.Context, id int64, notes string, ts time.Time) (bool, error) {
	return r.exec(ctx, "update notes", `UPDATE entries SET notes = ?, last_modified = ? WHERE id = ?`, notes, ts.Unix(), id)
}

func (r *SQLiteRepository) Touch(ctx context.Context, id int64, ts time.Time) (bool, error) {
	return r.exec(ctx, "touch entry", `UPDATE entries SET last_modified = ? WHERE id = ?`, ts.Unix(), id)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return r.exec(ctx, "delete entry", `DELETE FROM entries WHERE id = ?`, id)
}

// exec runs a single-row write and reports whether the row existed.
func (r *SQLiteRepository) exec(ctx context.Context, op, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	query := `SELECT id, kind, last_modified, title, notes FROM entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var (
		e    models.Entry
		kind int
		ts   int64
	)
	err := row.Scan(&e.ID, &kind, &ts, &e.Title, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry #%d: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	e.Kind = models.Kind(kind)
	e.LastModified = time.Unix(ts, 0)
	return &e, nil
}

func (r *SQLiteRepository) ListByKind(ctx context.Context, kind models.Kind) ([]models.Overview, error) {
	query := `SELECT id, last_modified, title FROM entries WHERE kind = ? ORDER BY last_modified DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, int(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]models.Overview, 0)
	for rows.Next() {
		var (
			item models.Overview
			ts   int64
		)
		if err := rows.Scan(&item.ID, &ts, &item.Title); err != nil {
			return nil, err
		}
		item.LastModified = time.Unix(ts, 0)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
