package sendloggorm

import (
	"github.com/kitabist/semaphore-go/internal/domain/sendlog"
)

// toDomain maps a GORM RecordModel to a domain-level Record.
func toDomain(m *RecordModel) *sendlog.Record {
	return &sendlog.Record{
		ID:          m.ID,
		Number:      m.Number,
		Message:     m.Message,
		SenderName:  m.SenderName,
		Status:      sendlog.Status(m.Status),
		ProviderID:  m.ProviderID,
		RawResponse: m.RawResponse,
		SentAt:      m.SentAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// toDomainMany maps a slice of RecordModel to a slice of domain Records.
func toDomainMany(models []RecordModel) []*sendlog.Record {
	out := make([]*sendlog.Record, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Record to a GORM RecordModel.
func fromDomain(d *sendlog.Record) *RecordModel {
	return &RecordModel{
		ID:          d.ID,
		Number:      d.Number,
		Message:     d.Message,
		SenderName:  d.SenderName,
		Status:      string(d.Status),
		ProviderID:  d.ProviderID,
		RawResponse: d.RawResponse,
		SentAt:      d.SentAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
