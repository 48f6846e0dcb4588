package middleware

import (
	"context"
	"net/http"

	"campus-events/config"
	"campus-events/session"
)

type contextKey string

const sessionKey contextKey = "session"

// LoadSession resolves the session cookie against the store and, when a
// live session exists, attaches it to the request context. Requests
// without a session pass through untouched; the route decides whether
// that matters.
func LoadSession(cfg config.CookieConfig, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r, cfg)
			if token != "" {
				if s, ok := sessions.Get(token); ok {
					r = r.WithContext(ContextWithSession(r.Context(), s))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(session.Session)
	return s, ok
}

func ContextWithSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}
