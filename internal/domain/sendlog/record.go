// Package sendlog holds the domain model for the relay's outbound archive.
// Every message pushed through the provider leaves exactly one Record behind,
// whether the send succeeded or not.
package sendlog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxMessageLength is the maximum allowed length for a message body.
	MaxMessageLength = 255
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

var (
	// ErrEmptyRecipient is returned when no recipient phone number is provided.
	ErrEmptyRecipient = errors.New("recipient phone number is required")
	// ErrEmptyMessage is returned when the message body is empty.
	ErrEmptyMessage = errors.New("message body is required")
	// ErrMessageTooLong is returned when the message body exceeds MaxMessageLength.
	ErrMessageTooLong = errors.New("message body exceeds maximum length")
)

// Record is the archive entry for one relayed SMS.
type Record struct {
	ID          uuid.UUID
	Number      string
	Message     string
	SenderName  string
	Status      Status
	ProviderID  string
	RawResponse string
	SentAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecord constructs a pending Record and enforces basic domain rules.
func NewRecord(number, message, senderName string) (*Record, error) {
	number = strings.TrimSpace(number)
	message = strings.TrimSpace(message)

	if number == "" {
		return nil, ErrEmptyRecipient
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	return &Record{
		ID:         uuid.New(),
		Number:     number,
		Message:    message,
		SenderName: strings.TrimSpace(senderName),
		Status:     StatusPending,
		CreatedAt:  time.Now(),
	}, nil
}

// MarkSent marks the record as accepted by the provider and stores its metadata.
func (r *Record) MarkSent(providerID string, raw string) {
	now := time.Now()
	r.SentAt = &now
	r.Status = StatusSuccess
	r.ProviderID = providerID
	r.RawResponse = raw
}

// MarkFailed marks the record as failed and stores the raw provider response.
func (r *Record) MarkFailed(raw string) {
	r.Status = StatusFailed
	r.RawResponse = raw
}
