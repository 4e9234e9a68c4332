package server

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behavior such as
// request-ID stamping or access logging.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the first middleware listed runs outermost. Nil
// entries are skipped, which lets callers toggle optional middleware without
// rebuilding the slice.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		h = mws[i](h)
	}
	return h
}
