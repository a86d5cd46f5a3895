// Package entries provides the persistence layer for medikom entries.
//
// # Overview
//
// The package defines a Repository interface for CRUD and query operations on
// Entry models (see internal/models). A SQLite implementation
// (SQLiteRepository) persists data using a dbx.DBTX (either *sql.DB or
// *sql.Tx), so the store can group several calls into one transaction.
//
// # Data Model
//
// Each row stores the entry id (assigned by the store's allocator, never by
// the database), its kind, the last modification time as epoch seconds, the
// title and the free-text notes. Listings return only overview fields;
// single-item reads return everything.
//
// # Missing rows
//
// Update and delete methods report whether a row was affected instead of
// failing, so callers can treat writes to missing ids as no-ops.
//
// Key Types
//
//   - type Repository        — interface the store works against (via store.RepositoryManager)
//   - type SQLiteRepository  — SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := entries.NewSQLiteRepository(tx)
//	_ = repo.Insert(ctx, entry)
//	tasks, _ := repo.ListByKind(ctx, models.KindTask)
//	one, _ := repo.GetByID(ctx, id)
//	_, _ = repo.DeleteByID(ctx, id)
package entries
