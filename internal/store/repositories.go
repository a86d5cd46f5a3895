package store

import (
	"github.com/dmitrijs2005/medikom/internal/dbx"
	"github.com/dmitrijs2005/medikom/internal/repositories/attachments"
	"github.com/dmitrijs2005/medikom/internal/repositories/configuration"
	"github.com/dmitrijs2005/medikom/internal/repositories/entries"
)

// RepositoryManager binds repositories to a database handle or to the
// transaction of a single operation.
type RepositoryManager interface {
	Configuration(db dbx.DBTX) configuration.Repository
	Entries(db dbx.DBTX) entries.Repository
	Attachments(db dbx.DBTX) attachments.Repository
}

// SQLiteRepositoryManager hands out the SQLite repositories.
type SQLiteRepositoryManager struct{}

func (SQLiteRepositoryManager) Configuration(db dbx.DBTX) configuration.Repository {
	return configuration.NewSQLiteRepository(db)
}

func (SQLiteRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(db)
}

func (SQLiteRepositoryManager) Attachments(db dbx.DBTX) attachments.Repository {
	return attachments.NewSQLiteRepository(db)
}
