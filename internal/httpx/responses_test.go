package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/records", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))

	JSONSuccess(w, r, map[string]string{"key": "value"}, map[string]any{"total": 10})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	meta := body["meta"].(map[string]any)
	assert.Equal(t, "req-1", meta["request_id"])
	assert.Equal(t, float64(10), meta["total"])
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/records/x", nil)

	JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid id", []ErrorDetail{{Field: "id", Message: "must be a number"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
	assert.Nil(t, resp.Meta)
}

func TestJSON_BareBody(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, []string{"Mapa", "Planta"})

	assert.JSONEq(t, `["Mapa","Planta"]`, w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	log := zap.NewNop()
	handler := AccessLogMiddleware(log)(RecoveryMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}
