package configuration

import (
	"context"
	"database/sql"
	"errors"
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

func (r *SQLiteRepository) Get(ctx context.Context, option string) (int64, error) {
	var value int64
	err := r.db.QueryRowContext(ctx, `SELECT value FROM configuration WHERE option = ?`, option).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("configuration[%s]: %w", option, common.ErrorNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get configuration[%s]: %w", option, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, option string, value int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO configuration (option, value) VALUES (?, ?)
		ON CONFLICT(option) DO UPDATE SET value = excluded.value
	`, option, value)
	if err != nil {
		return fmt.Errorf("failed to set configuration[%s]: %w", option, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT option, value FROM configuration`)
	if err != nil {
		return nil, fmt.Errorf("failed to list configuration: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var option string
		var value int64
		if err := rows.Scan(&option, &value); err != nil {
			return nil, fmt.Errorf("failed to scan configuration row: %w", err)
		}
		result[option] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate configuration rows: %w", err)
	}

	return result, nil
}
