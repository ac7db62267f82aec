package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRequestID(t *testing.T, incoming string) (captured, echoed string) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(HeaderRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return captured, rec.Header().Get(HeaderRequestID)
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	captured, echoed := captureRequestID(t, "")
	require.NotEmpty(t, captured)
	assert.Equal(t, captured, echoed)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
}

func TestRequestID_PreservesValidID(t *testing.T) {
	captured, echoed := captureRequestID(t, "custom-id_123.a")
	assert.Equal(t, "custom-id_123.a", captured)
	assert.Equal(t, "custom-id_123.a", echoed)
}

func TestRequestID_ReplacesMalformedID(t *testing.T) {
	for _, bad := range []string{
		"has space",
		"line\nbreak",
		strings.Repeat("x", maxRequestIDLen+1),
		"<script>",
	} {
		captured, echoed := captureRequestID(t, bad)
		assert.NotEqual(t, bad, captured)
		_, err := uuid.Parse(captured)
		assert.NoError(t, err, bad)
		assert.Equal(t, captured, echoed)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
