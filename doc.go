// Package semaphore is a thin client for the Semaphore SMS gateway HTTP API.
//
// Every method returns a Response map rather than an error: on success it is
// the provider's JSON payload, on failure it carries an "error" message plus,
// when the provider answered at all, the HTTP status and parsed error body.
// Read-only calls can be memoized for a short window by plugging a cache
// backend in via WithCache.
package semaphore
