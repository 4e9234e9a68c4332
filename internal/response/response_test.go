package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON_EchoesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("X-Request-ID", "req-42")

	RespondJSON(w, http.StatusOK, WelcomePayload{Message: "hi"})

	var envelope JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "req-42", envelope.RequestID)
}

func TestRespondJSON_OmitsRequestIDWhenUnset(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, WelcomePayload{Message: "hi"})

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	_, present := raw["requestId"]
	assert.False(t, present)
}

func TestRespondError_CarriesRequestIDAndCode(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("X-Request-ID", "req-7")

	RespondError(w, http.StatusBadRequest, "number is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "req-7", envelope.RequestID)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, http.StatusBadRequest, envelope.Error.Code)
	assert.Equal(t, "number is required", envelope.Error.Message)
}
