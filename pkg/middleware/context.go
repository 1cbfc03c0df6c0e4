package middleware

import (
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/hlog"

	"github.com/Bnei-Baruch/udpserial-panel/pkg/httputil"
)

type contextKey int

const requestContextKey contextKey = iota

// RequestContext carries per-request values filled in by the middleware
// chain and by handlers.
type RequestContext struct {
	IP   string
	View string
}

func ContextFromRequest(r *http.Request) (*RequestContext, bool) {
	rCtx, ok := r.Context().Value(requestContextKey).(*RequestContext)
	return rCtx, ok
}

func ContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestContextKey, &RequestContext{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rCtx, ok := ContextFromRequest(r); ok {
			rCtx.IP = realIP(r)
		}
		next.ServeHTTP(w, r)
	})
}

func realIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				err, ok := rvr.(error)
				if !ok {
					err = errors.Errorf("%v", rvr)
				}
				hlog.FromRequest(r).Error().Err(err).Bytes("stack", debug.Stack()).Msg("panic recovered")
				httputil.RespondWithError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
