package semaphore

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kitabist/semaphore-go/cache"
)

const (
	// DefaultBaseURL is the production Semaphore API endpoint.
	DefaultBaseURL = "https://api.semaphore.co/api/v4/"

	// DefaultTimeout bounds each request when the caller's context
	// carries no deadline of its own.
	DefaultTimeout = 5 * time.Second

	// DefaultCacheTTL is how long GET responses are memoized when a
	// cache backend is configured.
	DefaultCacheTTL = 30 * time.Second
)

// ErrEmptyAPIKey is returned by NewClient when no API key is provided.
var ErrEmptyAPIKey = errors.New("semaphore: API key is required")

// Client talks to the Semaphore SMS gateway. It is immutable after
// construction and safe for concurrent use; the only shared state is the
// optional response cache, which supplies its own concurrency guarantees.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP transport, e.g. a test double or a
// client with custom pooling. The transport's own timeout applies as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API endpoint. Intended for tests and staging.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCache enables memoization of GET responses in the given backend.
// The backend may be shared across clients and processes.
func WithCache(store cache.Cache) Option {
	return func(c *Client) { c.cache = store }
}

// WithCacheTTL overrides how long memoized GET responses stay fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient creates a Client for the given API key. Without options the
// client targets the production endpoint with a 5 second timeout and
// performs no caching.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	c := &Client{
		apiKey:   apiKey,
		baseURL:  DefaultBaseURL,
		timeout:  DefaultTimeout,
		cacheTTL: DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}
