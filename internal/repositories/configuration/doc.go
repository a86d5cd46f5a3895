// Package configuration provides persistence for the process-wide
// configuration rows of the medikom database.
//
// # Overview
//
// The configuration collection is a set of (option, value) rows with integer
// values. At runtime only one option is used: OptionCurrentID, the next
// unallocated entry identifier. A SQLite-backed implementation
// (SQLiteRepository) works over a dbx.DBTX so it can take part in the
// store's transactions.
//
// Typical Usage
//
//	repo := configuration.NewSQLiteRepository(tx)
//	id, _ := repo.Get(ctx, configuration.OptionCurrentID)
//	_ = repo.Set(ctx, configuration.OptionCurrentID, id+1)
package configuration
