package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	semaphore "github.com/kitabist/semaphore-go"
	"github.com/kitabist/semaphore-go/internal/domain/sendlog"
	"github.com/kitabist/semaphore-go/internal/request"
	"github.com/kitabist/semaphore-go/internal/response"
	"github.com/kitabist/semaphore-go/internal/service"
)

// MessageHandler wires HTTP endpoints to the relay service for sends and
// to the provider gateway for proxied read endpoints.
type MessageHandler struct {
	svc service.RelayService
	gw  service.Gateway
}

// NewMessageHandler constructs a new MessageHandler with its dependencies.
func NewMessageHandler(svc service.RelayService, gw service.Gateway) *MessageHandler {
	return &MessageHandler{
		svc: svc,
		gw:  gw,
	}
}

// SendMessage godoc
// @Summary     Send an SMS
// @Description Relays a message through the provider's bulk queue and archives the outcome.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendMessageRequest true "Message to send"
// @Success     200 {object} response.RecordResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /messages [post]
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.KindStandard)
}

// SendPriority godoc
// @Summary     Send a priority SMS
// @Description Relays a message through the provider's priority queue and archives the outcome.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendMessageRequest true "Message to send"
// @Success     200 {object} response.RecordResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /messages/priority [post]
func (h *MessageHandler) SendPriority(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.KindPriority)
}

// SendOTP godoc
// @Summary     Send a one-time password
// @Description Relays an OTP message; the provider substitutes the {otp} placeholder.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendOTPRequest true "OTP message to send"
// @Success     200 {object} response.RecordResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /otp [post]
func (h *MessageHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h.doRelay(w, r, service.SendInput{
		Number:     req.Number,
		Message:    req.Message,
		SenderName: req.SenderName,
		Kind:       service.KindOTP,
		Code:       req.Code,
	})
}

func (h *MessageHandler) relay(w http.ResponseWriter, r *http.Request, kind service.Kind) {
	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h.doRelay(w, r, service.SendInput{
		Number:     req.Number,
		Message:    req.Message,
		SenderName: req.SenderName,
		Kind:       kind,
	})
}

func (h *MessageHandler) doRelay(w http.ResponseWriter, r *http.Request, in service.SendInput) {
	rec, err := h.svc.Relay(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Provider rejections are part of the archive; the record's status field
	// tells the caller what happened.
	response.RespondJSON(w, http.StatusOK, response.FromDomainRecord(rec))
}

func isValidationError(err error) bool {
	return errors.Is(err, sendlog.ErrEmptyRecipient) ||
		errors.Is(err, sendlog.ErrEmptyMessage) ||
		errors.Is(err, sendlog.ErrMessageTooLong)
}

// Outbox godoc
// @Summary     List relayed messages
// @Description Returns a paginated view of the local send archive, newest first.
// @Tags        outbox
// @Produce     json
// @Param       page  query int false "Page number"         default(1)
// @Param       limit query int false "Page size (max 100)" default(20)
// @Success     200 {object} response.OutboxResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /outbox [get]
func (h *MessageHandler) Outbox(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page := 1
	limit := 20

	if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
		page = v
	}

	if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	items, total, err := h.svc.History(r.Context(), page, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := response.OutboxPayload{
		Items: response.FromDomainRecords(items),
		Total: total,
		Page:  page,
		Limit: limit,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// GetMessages godoc
// @Summary     List provider messages
// @Description Proxies the provider's sent-message listing; filters pass through verbatim.
// @Tags        provider
// @Produce     json
// @Param       limit query int false "Page size"
// @Param       page  query int false "Page number"
// @Success     200 {object} response.ProviderResponse
// @Router      /messages [get]
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, h.gw.GetMessages(r.Context(), queryFilters(r)))
}

// GetMessage godoc
// @Summary     Fetch one provider message
// @Description Proxies the provider's message lookup by its provider-assigned ID.
// @Tags        provider
// @Produce     json
// @Param       id path string true "Provider message ID"
// @Success     200 {object} response.ProviderResponse
// @Router      /messages/{id} [get]
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, h.gw.GetMessage(r.Context(), r.PathValue("id")))
}

// GetAccount godoc
// @Summary     Account information
// @Description Proxies the provider's account endpoint (credit balance, status).
// @Tags        provider
// @Produce     json
// @Success     200 {object} response.ProviderResponse
// @Router      /account [get]
func (h *MessageHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, h.gw.GetAccount(r.Context()))
}

// GetTransactions godoc
// @Summary     Account transactions
// @Description Proxies the provider's transaction listing.
// @Tags        provider
// @Produce     json
// @Success     200 {object} response.ProviderResponse
// @Router      /account/transactions [get]
func (h *MessageHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, h.gw.GetTransactions(r.Context(), queryFilters(r)))
}

// GetSenderNames godoc
// @Summary     Registered sender names
// @Description Proxies the provider's sender-name listing.
// @Tags        provider
// @Produce     json
// @Success     200 {object} response.ProviderResponse
// @Router      /account/sendernames [get]
func (h *MessageHandler) GetSenderNames(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, h.gw.GetSenderNames(r.Context(), queryFilters(r)))
}

// GetUsers godoc
// @Summary     Account users
// @Description Proxies the provider's account user listing.
// @Tags        provider
// @Produce     json
// @Success     200 {object} response.ProviderResponse
// @Router      /account/users [get]
func (h *MessageHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, h.gw.GetUsers(r.Context(), queryFilters(r)))
}

// proxy relays a provider response to the caller, mirroring the upstream
// status code when the provider itself answered with an error.
func (h *MessageHandler) proxy(w http.ResponseWriter, resp semaphore.Response) {
	if resp.Failed() {
		status := http.StatusBadGateway
		if code, ok := resp.StatusCode(); ok {
			status = code
		}
		response.RespondError(w, status, resp.ErrorMessage())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]any(resp))
}

// queryFilters passes the caller's query parameters through verbatim.
func queryFilters(r *http.Request) map[string]string {
	q := r.URL.Query()
	if len(q) == 0 {
		return nil
	}

	filters := make(map[string]string, len(q))
	for k := range q {
		filters[k] = q.Get(k)
	}
	return filters
}
