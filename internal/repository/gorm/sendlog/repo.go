package sendloggorm

import (
	"context"

	"github.com/kitabist/semaphore-go/internal/db"
	"github.com/kitabist/semaphore-go/internal/domain/sendlog"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of the sendlog.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a send-log repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// List returns a paginated view of the archive, newest first, and the total count.
func (r *Repository) List(ctx context.Context, page, limit int) ([]*sendlog.Record, int64, error) {
	var models []RecordModel
	var total int64

	query := r.db.WithContext(ctx).Model(&RecordModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

// UpdateStatus persists the current status and provider metadata of a record.
func (r *Repository) UpdateStatus(ctx context.Context, rec *sendlog.Record) error {
	updates := map[string]interface{}{
		"status":       string(rec.Status),
		"provider_id":  rec.ProviderID,
		"raw_response": rec.RawResponse,
		"sent_at":      rec.SentAt,
	}

	return r.db.WithContext(ctx).
		Model(&RecordModel{}).
		Where("id = ?", rec.ID).
		Updates(updates).Error
}

// Save inserts a new record into the database.
func (r *Repository) Save(ctx context.Context, rec *sendlog.Record) error {
	dbModel := fromDomain(rec)
	return r.db.WithContext(ctx).Create(dbModel).Error
}

// compile-time interface check
var _ sendlog.Repository = (*Repository)(nil)
