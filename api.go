package semaphore

import (
	"context"
	"net/http"
	"net/url"
)

// SendMessage sends an SMS. params are passed through verbatim as form
// fields; the provider expects at least "number" and "message", plus an
// optional "sendername".
func (c *Client) SendMessage(ctx context.Context, params map[string]string) Response {
	return c.do(ctx, http.MethodPost, "messages", params)
}

// SendPriority sends an SMS through the priority queue, which bypasses
// the provider's bulk queue. Same fields as SendMessage.
func (c *Client) SendPriority(ctx context.Context, params map[string]string) Response {
	return c.do(ctx, http.MethodPost, "priority", params)
}

// SendOTP sends a one-time-password message. The provider replaces the
// "{otp}" placeholder in the message body, or generates a code when a
// "code" field is not supplied.
func (c *Client) SendOTP(ctx context.Context, params map[string]string) Response {
	return c.do(ctx, http.MethodPost, "otp", params)
}

// GetMessages retrieves sent messages. filters may carry paging and date
// range parameters (limit, page, startDate, endDate, network, status) and
// is passed through verbatim.
func (c *Client) GetMessages(ctx context.Context, filters map[string]string) Response {
	return c.do(ctx, http.MethodGet, "messages", filters)
}

// GetMessage retrieves a single message by its provider-assigned ID.
func (c *Client) GetMessage(ctx context.Context, id string) Response {
	return c.do(ctx, http.MethodGet, "messages/"+url.PathEscape(id), nil)
}

// GetAccount retrieves account information, including the credit balance.
func (c *Client) GetAccount(ctx context.Context) Response {
	return c.do(ctx, http.MethodGet, "account", nil)
}

// GetTransactions retrieves account transactions. filters (limit, page)
// are passed through verbatim.
func (c *Client) GetTransactions(ctx context.Context, filters map[string]string) Response {
	return c.do(ctx, http.MethodGet, "account/transactions", filters)
}

// GetSenderNames retrieves the sender names registered on the account.
func (c *Client) GetSenderNames(ctx context.Context, filters map[string]string) Response {
	return c.do(ctx, http.MethodGet, "account/sendernames", filters)
}

// GetUsers retrieves the users attached to the account.
func (c *Client) GetUsers(ctx context.Context, filters map[string]string) Response {
	return c.do(ctx, http.MethodGet, "account/users", filters)
}
