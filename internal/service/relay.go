package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	semaphore "github.com/kitabist/semaphore-go"
	"github.com/kitabist/semaphore-go/cache"
	"github.com/kitabist/semaphore-go/internal/domain/sendlog"
)

// Gateway is the slice of the provider client the relay depends on.
// *semaphore.Client satisfies it; tests plug in a fake.
type Gateway interface {
	SendMessage(ctx context.Context, params map[string]string) semaphore.Response
	SendPriority(ctx context.Context, params map[string]string) semaphore.Response
	SendOTP(ctx context.Context, params map[string]string) semaphore.Response
	GetMessages(ctx context.Context, filters map[string]string) semaphore.Response
	GetMessage(ctx context.Context, id string) semaphore.Response
	GetAccount(ctx context.Context) semaphore.Response
	GetTransactions(ctx context.Context, filters map[string]string) semaphore.Response
	GetSenderNames(ctx context.Context, filters map[string]string) semaphore.Response
	GetUsers(ctx context.Context, filters map[string]string) semaphore.Response
}

// compile-time check: the real provider client satisfies the Gateway port.
var _ Gateway = (*semaphore.Client)(nil)

// Kind selects which provider send endpoint a relay goes through.
type Kind string

const (
	KindStandard Kind = "standard"
	KindPriority Kind = "priority"
	KindOTP      Kind = "otp"
)

// SendInput carries one outbound message through the relay.
type SendInput struct {
	Number     string
	Message    string
	SenderName string
	Kind       Kind
	// Code is the pre-generated one-time password for OTP sends.
	// Leave empty to let the provider generate one.
	Code string
}

type RelayService interface {
	// Relay sends one message through the provider and archives the outcome.
	// A provider-side failure is not a Go error: the returned record carries
	// StatusFailed and the raw provider response.
	Relay(ctx context.Context, in SendInput) (*sendlog.Record, error)

	// History returns a paginated view of the archive, newest first.
	History(ctx context.Context, page, limit int) ([]*sendlog.Record, int64, error)
}

type relayService struct {
	repo    sendlog.Repository
	gateway Gateway
	cache   cache.Cache

	// senderName is the account default applied when the caller supplies none.
	senderName string
}

// NewRelayService creates a relay with the given dependencies. cache may be
// nil; the sent-message bookkeeping is then skipped.
func NewRelayService(repo sendlog.Repository, gateway Gateway, c cache.Cache, senderName string) RelayService {
	return &relayService{
		repo:       repo,
		gateway:    gateway,
		cache:      c,
		senderName: senderName,
	}
}

func (s *relayService) History(ctx context.Context, page, limit int) ([]*sendlog.Record, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *relayService) Relay(ctx context.Context, in SendInput) (*sendlog.Record, error) {
	senderName := in.SenderName
	if senderName == "" {
		senderName = s.senderName
	}

	rec, err := sendlog.NewRecord(in.Number, in.Message, senderName)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save send-log record: %w", err)
	}

	resp := s.dispatch(ctx, rec, in)

	// The full provider response is archived verbatim, success or not.
	raw := ""
	if encoded, err := json.Marshal(resp); err == nil {
		raw = string(encoded)
	}

	if resp.Failed() {
		log.Printf("[Relay] Provider rejected %s: %s. Marking as FAILED.", rec.ID, resp.ErrorMessage())
		rec.MarkFailed(raw)

		// Best-effort: persist the FAILED status so the archive reflects reality.
		if uErr := s.repo.UpdateStatus(ctx, rec); uErr != nil {
			log.Printf("[Relay] Failed to persist FAILED status for %s: %v", rec.ID, uErr)
		}

		return rec, nil
	}

	rec.MarkSent(extractProviderID(resp), raw)
	if err := s.repo.UpdateStatus(ctx, rec); err != nil {
		log.Printf("[Relay] Failed to persist SUCCESS status for %s: %v", rec.ID, err)
		return rec, fmt.Errorf("update status for %s: %w", rec.ID, err)
	}

	// Optionally cache the sent timestamp keyed by provider message ID.
	if s.cache != nil && rec.ProviderID != "" {
		sentAt := time.Now().Format(time.RFC3339)
		if rec.SentAt != nil {
			sentAt = rec.SentAt.Format(time.RFC3339)
		}

		key := cache.RelayedMessages.Key(rec.ProviderID)
		if err := s.cache.Set(ctx, key, sentAt, 24*time.Hour); err != nil {
			log.Printf("[Relay] Failed to cache sent marker for %s: %v", rec.ProviderID, err)
		}
	}

	return rec, nil
}

// dispatch routes the send to the provider endpoint matching its kind.
func (s *relayService) dispatch(ctx context.Context, rec *sendlog.Record, in SendInput) semaphore.Response {
	params := map[string]string{
		"number":  rec.Number,
		"message": rec.Message,
	}
	if rec.SenderName != "" {
		params["sendername"] = rec.SenderName
	}

	switch in.Kind {
	case KindPriority:
		return s.gateway.SendPriority(ctx, params)
	case KindOTP:
		if in.Code != "" {
			params["code"] = in.Code
		}
		return s.gateway.SendOTP(ctx, params)
	default:
		return s.gateway.SendMessage(ctx, params)
	}
}

// extractProviderID pulls the provider-assigned message ID out of a send
// response. The provider reports it as a JSON number; bodies without one
// (e.g. array-shaped payloads that collapsed to an empty map) yield "".
func extractProviderID(resp semaphore.Response) string {
	switch v := resp["message_id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
