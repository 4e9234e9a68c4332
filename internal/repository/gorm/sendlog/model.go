package sendloggorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordModel is the GORM persistence model for relayed messages.
// It maps directly to the "send_log" table in Postgres.
type RecordModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number      string     `gorm:"size:20;not null"`
	Message     string     `gorm:"size:255;not null"`
	SenderName  string     `gorm:"size:50"`
	Status      string     `gorm:"size:20;not null"`
	ProviderID  string     `gorm:"size:100;index"`
	RawResponse string     `gorm:"type:text"`
	SentAt      *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (RecordModel) TableName() string {
	return "send_log"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *RecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
