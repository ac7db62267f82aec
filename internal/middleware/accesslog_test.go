package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok logs at debug", status: http.StatusOK, wantLevel: "DEBUG"},
		{name: "bad request logs at info", status: http.StatusBadRequest, wantLevel: "INFO"},
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			handler := RequestID(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("hello"))
			})))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?sex=male", nil)
			req.Header.Set(HeaderRequestID, "req-1")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "request", entry["msg"])
			assert.Equal(t, "http", entry["component"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/api/v1/summary", entry["path"])
			assert.InDelta(t, float64(tt.status), entry["status"], 0.001)
			assert.InDelta(t, 5.0, entry["bytes"], 0.001)
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}

func TestAccessLog_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := AccessLog(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.InDelta(t, float64(http.StatusOK), entry["status"], 0.001)
}
