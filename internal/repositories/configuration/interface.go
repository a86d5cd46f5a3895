package configuration

import "context"

// OptionCurrentID holds the identifier assigned to the next entry.
const OptionCurrentID = "current_id"

// Repository reads and writes integer configuration options.
type Repository interface {
	// Get returns the value of option, or common.ErrorNotFound.
	Get(ctx context.Context, option string) (int64, error)

	// Set inserts or overwrites the value of option.
	Set(ctx context.Context, option string, value int64) error

	// List returns every option with its value.
	List(ctx context.Context) (map[string]int64, error)
}
