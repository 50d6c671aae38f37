package store

import (
	"context"

	"propertytag/internal/property/models"
)

// Store is the persistence contract for property records. Implementations
// return pkg/sentinel errors (wrapped) for infrastructure facts:
// sentinel.ErrConflict when an insert would duplicate a property id,
// sentinel.ErrNotFound when a lookup or update matches nothing.
type Store interface {
	// Insert persists the record atomically and returns the assigned id.
	// The id is monotonically increasing and never reused.
	Insert(ctx context.Context, record *models.Record) (int64, error)

	// Update rewrites the mutable fields (purchase date, name, description)
	// of the record matching record.PropertyID. The assigned id and the
	// recorded tag path are left untouched.
	Update(ctx context.Context, record *models.Record) error

	// SetQRCodePath back-writes the tag image path after the file exists.
	SetQRCodePath(ctx context.Context, id int64, path string) error

	// Count returns the number of records matching filter. An empty filter
	// matches everything; otherwise the filter is a case-insensitive
	// substring match against the property id or the property name.
	Count(ctx context.Context, filter string) (int, error)

	// Page returns the records for a 1-based page of the filtered set,
	// ordered by property id ascending. A page past the end yields an
	// empty slice, not an error.
	Page(ctx context.Context, filter string, page, pageSize int) ([]*models.Record, error)

	// FindByPropertyID returns the record for the given property id.
	FindByPropertyID(ctx context.Context, propertyID string) (*models.Record, error)
}
