package semaphore

// Response is the uniform result of every client method. On success it holds
// the provider's JSON payload; on failure it holds an "error" message and,
// when an HTTP response was received, "status" and "body" entries.
type Response map[string]any

// Failed reports whether the response represents a failure.
func (r Response) Failed() bool {
	_, ok := r["error"]
	return ok
}

// ErrorMessage returns the failure message, or "" for successful responses.
func (r Response) ErrorMessage() string {
	if s, ok := r["error"].(string); ok {
		return s
	}
	return ""
}

// StatusCode returns the upstream HTTP status for failures that received a
// response. ok is false for transport-level failures and for successes.
func (r Response) StatusCode() (code int, ok bool) {
	switch v := r["status"].(type) {
	case int:
		return v, true
	case float64:
		// Responses replayed from a JSON-backed cache decode numbers as float64.
		return int(v), true
	default:
		return 0, false
	}
}

// Body returns the parsed upstream error payload, or nil if the provider's
// error body was missing or not valid JSON.
func (r Response) Body() any {
	return r["body"]
}
