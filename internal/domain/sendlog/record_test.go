package sendlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Defaults(t *testing.T) {
	rec, err := NewRecord("  09171234567 ", " hi ", " KITABIST ")
	require.NoError(t, err)

	assert.Equal(t, "09171234567", rec.Number)
	assert.Equal(t, "hi", rec.Message)
	assert.Equal(t, "KITABIST", rec.SenderName)
	assert.Equal(t, StatusPending, rec.Status)
	assert.NotZero(t, rec.ID)
	assert.NotZero(t, rec.CreatedAt)
	assert.Nil(t, rec.SentAt)
}

func TestNewRecord_Validation(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		message string
		wantErr error
	}{
		{"empty recipient", "", "hi", ErrEmptyRecipient},
		{"blank recipient", "   ", "hi", ErrEmptyRecipient},
		{"empty message", "09171234567", "", ErrEmptyMessage},
		{"message too long", "09171234567", strings.Repeat("x", MaxMessageLength+1), ErrMessageTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.number, tt.message, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecord_MarkSent(t *testing.T) {
	rec, err := NewRecord("09171234567", "hi", "")
	require.NoError(t, err)

	rec.MarkSent("5020", `{"message_id":5020}`)

	assert.Equal(t, StatusSuccess, rec.Status)
	assert.Equal(t, "5020", rec.ProviderID)
	assert.Equal(t, `{"message_id":5020}`, rec.RawResponse)
	require.NotNil(t, rec.SentAt)
}

func TestRecord_MarkFailed(t *testing.T) {
	rec, err := NewRecord("09171234567", "hi", "")
	require.NoError(t, err)

	rec.MarkFailed(`{"error":"no balance"}`)

	assert.Equal(t, StatusFailed, rec.Status)
	assert.Empty(t, rec.ProviderID)
	assert.Nil(t, rec.SentAt)
}
