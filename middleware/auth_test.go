package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-events/config"
	"campus-events/middleware"
	"campus-events/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSessionAttachesKnownToken(t *testing.T) {
	cfg := config.CookieConfig{Name: "campus_session", Path: "/"}
	sessions := session.NewMemoryStore()
	sessions.Start("tok", session.New("alice", "user"))

	var got session.Session
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = middleware.SessionFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "campus_session", Value: "tok"})
	middleware.LoadSession(cfg, sessions)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.False(t, got.IsAdmin)
}

func TestLoadSessionIgnoresUnknownToken(t *testing.T) {
	cfg := config.CookieConfig{Name: "campus_session", Path: "/"}
	sessions := session.NewMemoryStore()

	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = middleware.SessionFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "campus_session", Value: "stale"})
	middleware.LoadSession(cfg, sessions)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, ok)
}

func TestLoadSessionNoCookie(t *testing.T) {
	cfg := config.CookieConfig{Name: "campus_session", Path: "/"}
	sessions := session.NewMemoryStore()

	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = middleware.SessionFromContext(r.Context())
	})

	middleware.LoadSession(cfg, sessions)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.False(t, ok)
}

func TestSessionFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, ok := middleware.SessionFromContext(req.Context())
	assert.False(t, ok)
}
