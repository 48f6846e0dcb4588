package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-events/config"
	"campus-events/handlers"
	"campus-events/middleware"
	"campus-events/repo"
	"campus-events/routes"
	"campus-events/session"
	"campus-events/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	cfg        config.Config
	backend    *storage.MemoryBackend
	sessions   *session.MemoryStore
	users      *repo.Users
	admins     *repo.Admins
	events     *repo.Events
	attendance *repo.Attendance
	router     *mux.Router
}

func testConfig() config.Config {
	return config.Config{
		AppEnv:    "test",
		Port:      "8080",
		Templates: "testdata/templates",
		Admin:     config.AdminConfig{Username: "admin", Password: "admin123"},
		Cookie: config.CookieConfig{
			Name:     "campus_session",
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := testConfig()
	backend := storage.NewMemoryBackend()
	require.NoError(t, repo.Seed(backend, cfg.Admin))

	env := &testEnv{
		cfg:        cfg,
		backend:    backend,
		sessions:   session.NewMemoryStore(),
		users:      repo.NewUsers(backend),
		admins:     repo.NewAdmins(backend),
		events:     repo.NewEvents(backend),
		attendance: repo.NewAttendance(backend),
	}
	env.router = routes.SetupRoutes(cfg, env.sessions, routes.Handlers{
		Auth:       handlers.NewAuthHandler(cfg, env.users, env.admins, env.sessions),
		Events:     handlers.NewEventHandler(env.events),
		Attendance: handlers.NewAttendanceHandler(env.attendance),
		Pages:      handlers.NewPageHandler(cfg),
	})
	return env
}

// serve routes the request through the full router, so session loading
// and error mapping behave as in production.
func (env *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// executeRequest invokes a single handler through the error middleware,
// bypassing routing.
func executeRequest(handler middleware.AppHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	middleware.ErrorHandler(handler).ServeHTTP(rec, req)
	return rec
}
