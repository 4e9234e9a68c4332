package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	semaphore "github.com/kitabist/semaphore-go"
	"github.com/kitabist/semaphore-go/internal/domain/sendlog"
	"github.com/kitabist/semaphore-go/internal/response"
	"github.com/kitabist/semaphore-go/internal/service"
)

// fakeRelay returns canned results without touching a provider or database.
type fakeRelay struct {
	lastIn service.SendInput
	rec    *sendlog.Record
	err    error
}

func (f *fakeRelay) Relay(ctx context.Context, in service.SendInput) (*sendlog.Record, error) {
	f.lastIn = in
	return f.rec, f.err
}

func (f *fakeRelay) History(ctx context.Context, page, limit int) ([]*sendlog.Record, int64, error) {
	return nil, 0, nil
}

// fakeProxyGateway replies with one canned response on every read.
type fakeProxyGateway struct {
	resp semaphore.Response
}

func (f *fakeProxyGateway) SendMessage(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) SendPriority(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) SendOTP(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) GetMessages(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) GetMessage(ctx context.Context, id string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) GetAccount(ctx context.Context) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) GetTransactions(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) GetSenderNames(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}
func (f *fakeProxyGateway) GetUsers(ctx context.Context, p map[string]string) semaphore.Response {
	return f.resp
}

func TestSendMessage_InvalidJSONBody(t *testing.T) {
	h := NewMessageHandler(&fakeRelay{}, &fakeProxyGateway{})

	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.SendMessage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_ValidationErrorMapsTo400(t *testing.T) {
	h := NewMessageHandler(&fakeRelay{err: sendlog.ErrEmptyRecipient}, &fakeProxyGateway{})

	req := httptest.NewRequest(http.MethodPost, "/messages",
		strings.NewReader(`{"number":"","message":"hi"}`))
	w := httptest.NewRecorder()

	h.SendMessage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_ReturnsArchivedRecord(t *testing.T) {
	rec, err := sendlog.NewRecord("09171234567", "hi", "")
	require.NoError(t, err)
	rec.MarkSent("5020", `{"message_id":5020}`)

	relay := &fakeRelay{rec: rec}
	h := NewMessageHandler(relay, &fakeProxyGateway{})

	req := httptest.NewRequest(http.MethodPost, "/messages",
		strings.NewReader(`{"number":"09171234567","message":"hi"}`))
	w := httptest.NewRecorder()

	h.SendMessage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.KindStandard, relay.lastIn.Kind)

	var envelope struct {
		Success bool               `json:"success"`
		Data    response.RecordDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, rec.ID.String(), envelope.Data.ID)
	assert.Equal(t, string(sendlog.StatusSuccess), envelope.Data.Status)
	assert.Equal(t, "5020", envelope.Data.ProviderID)
}

func TestSendOTP_PassesCodeThrough(t *testing.T) {
	rec, err := sendlog.NewRecord("09171234567", "code: {otp}", "")
	require.NoError(t, err)

	relay := &fakeRelay{rec: rec}
	h := NewMessageHandler(relay, &fakeProxyGateway{})

	req := httptest.NewRequest(http.MethodPost, "/otp",
		strings.NewReader(`{"number":"09171234567","message":"code: {otp}","code":"123456"}`))
	w := httptest.NewRecorder()

	h.SendOTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.KindOTP, relay.lastIn.Kind)
	assert.Equal(t, "123456", relay.lastIn.Code)
}

func TestProxy_MirrorsUpstreamErrorStatus(t *testing.T) {
	gw := &fakeProxyGateway{resp: semaphore.Response{
		"error":  "request returned status code 429",
		"status": 429,
	}}
	h := NewMessageHandler(&fakeRelay{}, gw)

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	w := httptest.NewRecorder()

	h.GetMessages(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestProxy_TransportFailureMapsTo502(t *testing.T) {
	gw := &fakeProxyGateway{resp: semaphore.Response{"error": "connection refused"}}
	h := NewMessageHandler(&fakeRelay{}, gw)

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	w := httptest.NewRecorder()

	h.GetAccount(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProxy_SuccessWrapsProviderPayload(t *testing.T) {
	gw := &fakeProxyGateway{resp: semaphore.Response{"account_name": "kitabist", "credit_balance": "1000"}}
	h := NewMessageHandler(&fakeRelay{}, gw)

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	w := httptest.NewRecorder()

	h.GetAccount(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "1000", envelope.Data["credit_balance"])
}
