package semaphore

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// do is the shared dispatch path behind every public method. It attaches the
// API key to the query string for GETs and to the form body for everything
// else; the key is never present on both channels for a single request.
func (c *Client) do(ctx context.Context, method, path string, params map[string]string) Response {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("apikey", c.apiKey)

	if method == http.MethodGet {
		return c.getCached(ctx, path, values)
	}

	return c.perform(ctx, method, path, nil, values)
}

// getCached serves a GET from the response cache when a live entry exists,
// performing and memoizing the call otherwise. Mutating calls never come
// through here. Concurrent misses for the same key may both hit the network;
// last write wins.
func (c *Client) getCached(ctx context.Context, path string, query url.Values) Response {
	if c.cache == nil {
		return c.perform(ctx, http.MethodGet, path, query, nil)
	}

	key := cacheKey(path, query)

	if raw, err := c.cache.Get(ctx, key); err == nil {
		var cached Response
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached
		}
	}

	resp := c.perform(ctx, http.MethodGet, path, query, nil)

	// Best effort: a failed write only costs a future cache miss.
	if encoded, err := json.Marshal(resp); err == nil {
		_ = c.cache.Set(ctx, key, string(encoded), c.cacheTTL)
	}

	return resp
}

// perform executes one HTTP call and normalizes the outcome into a Response.
// No failure escapes as a Go error; callers of the public methods inspect
// the returned map instead.
func (c *Client) perform(ctx context.Context, method, path string, query, form url.Values) Response {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to create request: %v", err))
	}
	if len(form) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorResponse(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to read response body: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		out := Response{
			"error":  fmt.Sprintf("request returned status code %d", resp.StatusCode),
			"status": resp.StatusCode,
		}
		// Upstream error payloads are parsed on a best-effort basis only.
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			out["body"] = parsed
		} else {
			out["body"] = nil
		}
		return out
	}

	result := Response{}
	if err := json.Unmarshal(raw, &result); err != nil {
		// Empty or non-JSON success bodies collapse to an empty payload.
		return Response{}
	}

	return result
}

// cacheKey derives a deterministic signature from the request path and its
// query parameters, independent of the order the caller supplied them.
func cacheKey(path string, query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	_, _ = io.WriteString(h, path)
	for _, k := range keys {
		_, _ = io.WriteString(h, "&"+k+"="+query.Get(k))
	}

	return fmt.Sprintf("semaphore:get:%016x", h.Sum64())
}

func errorResponse(msg string) Response {
	return Response{"error": msg}
}
