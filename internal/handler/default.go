package handler

import (
	"net/http"

	"github.com/kitabist/semaphore-go/cache"
	"github.com/kitabist/semaphore-go/internal/response"
	"github.com/kitabist/semaphore-go/internal/service"
)

// HomeHandler serves the root endpoint and a health check that probes the
// cache backend and the SMS provider.
type HomeHandler struct {
	cache   cache.Cache
	gateway service.Gateway
}

// NewHomeHandler returns a HomeHandler probing the given dependencies.
// Either may be nil, in which case that check is skipped.
func NewHomeHandler(c cache.Cache, gw service.Gateway) *HomeHandler {
	return &HomeHandler{
		cache:   c,
		gateway: gw,
	}
}

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to the Semaphore SMS relay",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Pings the cache backend and the SMS provider; reports degraded with a 503 when either is unreachable.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload := response.HealthPayload{Status: "ok"}
	healthy := true

	if h.cache != nil {
		payload.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			payload.Cache = "unavailable"
			healthy = false
		}
	}

	if h.gateway != nil {
		payload.Provider = "ok"
		// Reads go through the client's response cache, so a healthy
		// provider is not polled more than once per cache window.
		if resp := h.gateway.GetAccount(ctx); resp.Failed() {
			payload.Provider = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		payload.Status = "degraded"
		response.RespondJSON(w, http.StatusServiceUnavailable, payload)
		return
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
