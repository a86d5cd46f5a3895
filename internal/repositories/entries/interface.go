package entries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/medikom/internal/models"
)

// Repository describes CRUD and query operations for Entry objects.
type Repository interface {
	// Insert stores a new entry. The id must not be in use.
	Insert(ctx context.Context, entry *models.Entry) error

	// UpdateTitle sets the title and modification time of an entry.
	UpdateTitle(ctx context.Context, id int64, title string, ts time.Time) (bool, error)

	// UpdateNotes sets the notes and modification time of an entry.
	UpdateNotes(ctx context.Context, id int64, notes string, ts time.Time) (bool, error)

	// Touch sets only the modification time of an entry.
	Touch(ctx context.Context, id int64, ts time.Time) (bool, error)

	// DeleteByID removes an entry. Attachments must be removed first.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// GetByID returns a single entry or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Entry, error)

	// ListByKind returns overviews of all entries of a kind, most recently
	// modified first.
	ListByKind(ctx context.Context, kind models.Kind) ([]models.Overview, error)
}
