package attachments

import "context"

// Repository describes operations on attachment records.
type Repository interface {
	// Insert attaches path to the entry. It fails with
	// common.ErrorDuplicateAttachment when the pair already exists and with
	// common.ErrorNotFound when the entry does not exist.
	Insert(ctx context.Context, entryID int64, path string) error

	// Delete removes the (entryID, path) pair and reports whether it existed.
	Delete(ctx context.Context, entryID int64, path string) (bool, error)

	// DeleteByEntryID removes every attachment of the entry.
	DeleteByEntryID(ctx context.Context, entryID int64) (int64, error)

	// ListByEntryID returns the attached paths ordered by path.
	ListByEntryID(ctx context.Context, entryID int64) ([]string, error)
}
