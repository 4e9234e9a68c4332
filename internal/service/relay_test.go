package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	semaphore "github.com/kitabist/semaphore-go"
	"github.com/kitabist/semaphore-go/cache"
	"github.com/kitabist/semaphore-go/cache/memory"
	"github.com/kitabist/semaphore-go/internal/domain/sendlog"
)

// fakeRepo is an in-memory sendlog.Repository test double.
type fakeRepo struct {
	saved   []*sendlog.Record
	updated []*sendlog.Record
	saveErr error
}

func (f *fakeRepo) Save(ctx context.Context, r *sendlog.Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, page, limit int) ([]*sendlog.Record, int64, error) {
	return f.saved, int64(len(f.saved)), nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, r *sendlog.Record) error {
	f.updated = append(f.updated, r)
	return nil
}

// fakeGateway records the last call and replies with a canned response.
type fakeGateway struct {
	resp       semaphore.Response
	lastMethod string
	lastParams map[string]string
}

func (f *fakeGateway) send(method string, params map[string]string) semaphore.Response {
	f.lastMethod = method
	f.lastParams = params
	return f.resp
}

func (f *fakeGateway) SendMessage(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("messages", p)
}
func (f *fakeGateway) SendPriority(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("priority", p)
}
func (f *fakeGateway) SendOTP(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("otp", p)
}
func (f *fakeGateway) GetMessages(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("messages", p)
}
func (f *fakeGateway) GetMessage(ctx context.Context, id string) semaphore.Response {
	return f.send("messages/"+id, nil)
}
func (f *fakeGateway) GetAccount(ctx context.Context) semaphore.Response {
	return f.send("account", nil)
}
func (f *fakeGateway) GetTransactions(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("account/transactions", p)
}
func (f *fakeGateway) GetSenderNames(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("account/sendernames", p)
}
func (f *fakeGateway) GetUsers(ctx context.Context, p map[string]string) semaphore.Response {
	return f.send("account/users", p)
}

var _ Gateway = (*fakeGateway)(nil)

func TestRelay_SuccessArchivesAndCaches(t *testing.T) {
	repo := &fakeRepo{}
	gw := &fakeGateway{resp: semaphore.Response{"message_id": float64(5020), "status": "Queued"}}
	store := memory.New()

	svc := NewRelayService(repo, gw, store, "KITABIST")

	rec, err := svc.Relay(context.Background(), SendInput{
		Number:  "09171234567",
		Message: "hi",
		Kind:    KindStandard,
	})
	require.NoError(t, err)

	assert.Equal(t, sendlog.StatusSuccess, rec.Status)
	assert.Equal(t, "5020", rec.ProviderID)
	assert.NotNil(t, rec.SentAt)
	assert.NotEmpty(t, rec.RawResponse)

	require.Len(t, repo.saved, 1)
	require.Len(t, repo.updated, 1)

	assert.Equal(t, "messages", gw.lastMethod)
	assert.Equal(t, "09171234567", gw.lastParams["number"])
	assert.Equal(t, "hi", gw.lastParams["message"])
	assert.Equal(t, "KITABIST", gw.lastParams["sendername"], "account default sender name should apply")

	_, err = store.Get(context.Background(), cache.RelayedMessages.Key("5020"))
	assert.NoError(t, err, "sent marker should be cached under the provider ID")
}

func TestRelay_ProviderFailureIsArchivedNotReturned(t *testing.T) {
	repo := &fakeRepo{}
	gw := &fakeGateway{resp: semaphore.Response{
		"error":  "request returned status code 429",
		"status": 429,
	}}

	svc := NewRelayService(repo, gw, nil, "")

	rec, err := svc.Relay(context.Background(), SendInput{
		Number:  "09171234567",
		Message: "hi",
	})
	require.NoError(t, err, "provider failures surface in the record, not as errors")

	assert.Equal(t, sendlog.StatusFailed, rec.Status)
	assert.Empty(t, rec.ProviderID)
	assert.Contains(t, rec.RawResponse, "429")
	require.Len(t, repo.updated, 1)
}

func TestRelay_ValidationFailsBeforeAnySideEffect(t *testing.T) {
	repo := &fakeRepo{}
	gw := &fakeGateway{resp: semaphore.Response{}}

	svc := NewRelayService(repo, gw, nil, "")

	_, err := svc.Relay(context.Background(), SendInput{Number: "", Message: "hi"})
	require.ErrorIs(t, err, sendlog.ErrEmptyRecipient)

	assert.Empty(t, repo.saved)
	assert.Empty(t, gw.lastMethod)
}

func TestRelay_KindRouting(t *testing.T) {
	tests := []struct {
		name       string
		in         SendInput
		wantMethod string
		wantCode   string
	}{
		{
			name:       "priority",
			in:         SendInput{Number: "09171234567", Message: "hi", Kind: KindPriority},
			wantMethod: "priority",
		},
		{
			name:       "otp with explicit code",
			in:         SendInput{Number: "09171234567", Message: "code: {otp}", Kind: KindOTP, Code: "123456"},
			wantMethod: "otp",
			wantCode:   "123456",
		},
		{
			name:       "otp with provider-generated code",
			in:         SendInput{Number: "09171234567", Message: "code: {otp}", Kind: KindOTP},
			wantMethod: "otp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			gw := &fakeGateway{resp: semaphore.Response{"message_id": float64(1)}}
			svc := NewRelayService(repo, gw, nil, "")

			_, err := svc.Relay(context.Background(), tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMethod, gw.lastMethod)
			assert.Equal(t, tt.wantCode, gw.lastParams["code"])
		})
	}
}

func TestHistory_DelegatesToRepository(t *testing.T) {
	rec, err := sendlog.NewRecord("09171234567", "hi", "")
	require.NoError(t, err)

	repo := &fakeRepo{saved: []*sendlog.Record{rec}}
	svc := NewRelayService(repo, &fakeGateway{}, nil, "")

	items, total, err := svc.History(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, rec.ID, items[0].ID)
}
