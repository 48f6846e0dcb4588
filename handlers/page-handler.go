package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"campus-events/config"
	"campus-events/middleware"
	"campus-events/models"
)

// PageHandler serves the HTML shell. The templates themselves belong to
// the presentation layer; this handler only resolves sessions, decides
// redirects, and reports a missing template as a JSON 404 the way the API
// consumers expect.
type PageHandler struct {
	cfg config.Config
}

func NewPageHandler(cfg config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

type pageData struct {
	User         string
	Unauthorized bool
}

func (h *PageHandler) IndexHandler(w http.ResponseWriter, r *http.Request) error {
	data := pageData{Unauthorized: r.URL.Query().Get("unauthorized") != ""}
	return h.render(w, "index.html", data)
}

func (h *PageHandler) RegisterPageHandler(w http.ResponseWriter, r *http.Request) error {
	// The presentation layer ships this page as registration.html.
	return h.render(w, "registration.html", pageData{})
}

func (h *PageHandler) AdminLoginPageHandler(w http.ResponseWriter, r *http.Request) error {
	if s, ok := middleware.SessionFromContext(r.Context()); ok && s.Role == models.RoleAdmin {
		http.Redirect(w, r, "/admin_dashboard", http.StatusFound)
		return nil
	}
	return h.render(w, "admin_login.html", pageData{})
}

func (h *PageHandler) AdminDashboardHandler(w http.ResponseWriter, r *http.Request) error {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok || s.Role != models.RoleAdmin {
		http.Redirect(w, r, "/admin_login", http.StatusFound)
		return nil
	}
	return h.render(w, "admin_dashboard.html", pageData{User: s.Username})
}

func (h *PageHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) error {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/?unauthorized=1", http.StatusFound)
		return nil
	}
	return h.render(w, "dashboard.html", pageData{User: s.Username})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) error {
	tmpl, err := template.ParseFiles(filepath.Join(h.cfg.Templates, name))
	if err != nil {
		writeJSON(w, http.StatusNotFound, JSONResponse{
			"success": false,
			"message": fmt.Sprintf("Template '%s' not found in %s/", name, h.cfg.Templates),
		})
		return nil
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		return middleware.NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}
	return nil
}
