package attachments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medikom/internal/common"
	"github.com/dmitrijs2005/medikom/internal/dbx"
)

var _ Repository = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, entryID int64, path string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO attachments (id, path) VALUES (?, ?)`, entryID, path)
	switch {
	case err == nil:
		return nil
	case dbx.IsUniqueViolation(err):
		return fmt.Errorf("attachment %q of #%d: %w", path, entryID, common.ErrorDuplicateAttachment)
	case dbx.IsForeignKeyViolation(err):
		return fmt.Errorf("entry #%d: %w", entryID, common.ErrorNotFound)
	default:
		return fmt.Errorf("failed to insert attachment: %w", err)
	}
}

func (r *SQLiteRepository) Delete(ctx context.Context, entryID int64, path string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = ? AND path = ?`, entryID, path)
	if err != nil {
		return false, fmt.Errorf("failed to delete attachment: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) DeleteByEntryID(ctx context.Context, entryID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = ?`, entryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attachments: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) ListByEntryID(ctx context.Context, entryID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT path FROM attachments WHERE id = ? ORDER BY path`, entryID)
	if err != nil {
		return nil, fmt.Errorf("error selecting attachments: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		result = append(result, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
