package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	requestID(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
}

func TestRequestID_ClientSuppliedKept(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rr := httptest.NewRecorder()
	requestID(inner).ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get("X-Request-ID"))
}

func TestRequestID_EmptyOutsideRequest(t *testing.T) {
	assert.Empty(t, RequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRouterSetsRequestIDHeader(t *testing.T) {
	rr := serveRequest(t, &stubSearcher{}, "/api/health")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
