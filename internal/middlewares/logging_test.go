package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	var gotRequestID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, gotRequestID, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "short and stout", rr.Body.String())
}

func TestResponseWriter_TracksStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	n, err := rw.Write([]byte("nope"))

	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, http.StatusNotFound, rw.statusCode)
	assert.Equal(t, 4, rw.size)
}
