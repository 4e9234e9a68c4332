package sendlog

import "context"

// Repository defines the persistence operations for Record aggregates.
//
// It is implemented by infrastructure layers (e.g. GORM) while the domain
// and service layers depend only on this interface.
type Repository interface {
	// Save persists a new record.
	Save(ctx context.Context, r *Record) error

	// List returns a paginated view of the archive, newest first,
	// along with the total number of records.
	List(ctx context.Context, page, limit int) ([]*Record, int64, error)

	// UpdateStatus updates the status and provider metadata of an existing record.
	UpdateStatus(ctx context.Context, r *Record) error
}
