package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogCarriesCaller(t *testing.T) {
	prevLog, prevRequestLog := log.Logger, requestLog
	t.Cleanup(func() {
		log.Logger, requestLog = prevLog, prevRequestLog
	})

	dir := t.TempDir()
	InitLog(Config{
		FileLoggingEnabled: true,
		Directory:          dir,
		Filename:           "access.log",
		MaxSize:            1,
	})

	h := ContextMiddleware(LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/statistics", nil))

	data, err := os.ReadFile(filepath.Join(dir, "access.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":"/statistics"`)
	assert.Contains(t, string(data), `"line":"`)
	assert.Contains(t, string(data), "logging.go:")
}
