package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealIP(t *testing.T) {
	var got string
	h := ContextMiddleware(RealIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rCtx, ok := ContextFromRequest(r)
		assert.True(t, ok)
		got = rCtx.IP
	})))

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.0.0.7", got)

	req.Header.Set("X-Forwarded-For", "192.168.1.2, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "192.168.1.2", got)
}

func TestRecovery(t *testing.T) {
	h := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
