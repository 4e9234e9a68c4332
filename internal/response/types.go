package response

import (
	"time"

	domain "github.com/kitabist/semaphore-go/internal/domain/sendlog"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

// HealthPayload reports overall health plus the per-dependency probes.
// Cache and Provider are "ok" or "unavailable"; they are omitted when
// the corresponding dependency is not wired.
type HealthPayload struct {
	Status   string `json:"status"`
	Cache    string `json:"cache,omitempty"`
	Provider string `json:"provider,omitempty"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	RequestID string         `json:"requestId,omitempty"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	RequestID string        `json:"requestId,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// RecordDTO is a public-facing representation of a send-log record
// used in API responses. It decouples the wire format from
// the domain entity and plays nicely with Swagger.
type RecordDTO struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Message     string     `json:"message"`
	SenderName  string     `json:"sendername,omitempty"`
	Status      string     `json:"status"`
	ProviderID  string     `json:"providerId,omitempty"`
	RawResponse string     `json:"rawResponse,omitempty"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type RecordResponse struct {
	Success   bool      `json:"success"`
	Data      RecordDTO `json:"data"`
	RequestID string    `json:"requestId,omitempty"`
	Timestamp string    `json:"timestamp"`
}

type OutboxPayload struct {
	Items []RecordDTO `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

type OutboxResponse struct {
	Success   bool          `json:"success"`
	Data      OutboxPayload `json:"data"`
	RequestID string        `json:"requestId,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// ProviderResponse wraps a raw provider payload proxied to the caller.
type ProviderResponse struct {
	Success   bool           `json:"success"`
	Data      map[string]any `json:"data"`
	RequestID string         `json:"requestId,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// FromDomainRecord converts a domain record into its DTO.
func FromDomainRecord(r *domain.Record) RecordDTO {
	return RecordDTO{
		ID:          r.ID.String(),
		Number:      r.Number,
		Message:     r.Message,
		SenderName:  r.SenderName,
		Status:      string(r.Status),
		ProviderID:  r.ProviderID,
		RawResponse: r.RawResponse,
		SentAt:      r.SentAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRecords converts domain records into DTOs
// for use in HTTP responses.
func FromDomainRecords(recs []*domain.Record) []RecordDTO {
	out := make([]RecordDTO, len(recs))
	for i, r := range recs {
		out[i] = FromDomainRecord(r)
	}
	return out
}
