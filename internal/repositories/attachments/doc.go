// Package attachments provides the persistence layer for file references
// attached to medikom entries.
//
// An attachment is identified by (entry id, path). Only the path string is
// stored; the referenced file is never read or owned. The SQLite
// implementation maps driver constraint errors to the sentinel errors of
// internal/common so the store can tell a duplicate attachment apart from a
// storage failure.
//
// Typical Usage
//
//	repo := attachments.NewSQLiteRepository(tx)
//	err := repo.Insert(ctx, id, "/home/me/report.pdf")
//	if errors.Is(err, common.ErrorDuplicateAttachment) { ... }
//	paths, _ := repo.ListByEntryID(ctx, id)
package attachments
