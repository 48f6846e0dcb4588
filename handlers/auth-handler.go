package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"campus-events/auth"
	"campus-events/config"
	"campus-events/middleware"
	"campus-events/models"
	"campus-events/repo"
	"campus-events/session"
)

type JSONResponse map[string]interface{}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	cfg      config.Config
	users    *repo.Users
	admins   *repo.Admins
	sessions session.Store
}

func NewAuthHandler(cfg config.Config, users *repo.Users, admins *repo.Admins, sessions session.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: users, admins: admins, sessions: sessions}
}

// RegisterHandler creates a student account. The admin collection is
// never consulted; the literal username "admin" is reserved for the admin
// portal in any casing.
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.ValidationError("Invalid request payload")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return middleware.ValidationError("Username and password required")
	}
	if strings.EqualFold(username, "admin") {
		return middleware.ValidationError("Username 'admin' is reserved for admin portal")
	}

	user := models.User{Username: username, Password: req.Password, Role: models.RoleUser}
	if err := h.users.Create(user); err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			return middleware.ValidationError("Username already exists")
		}
		return middleware.StorageError("Failed to save user", err)
	}

	writeJSON(w, http.StatusCreated, JSONResponse{
		"success": true,
		"message": "Registered",
		"role":    models.RoleUser,
	})
	return nil
}

// LoginHandler authenticates against the user collection only; there is
// no admin fallback. An unknown username and a wrong password produce the
// same response.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.ValidationError("Invalid request payload")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return middleware.ValidationError("Username and password required")
	}

	user, ok := h.users.FindByCredentials(username, req.Password)
	if !ok {
		return middleware.AuthError("Wrong password")
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	if err := h.startSession(w, username, role); err != nil {
		return middleware.StorageError("Internal server error", err)
	}

	redirect := "/dashboard"
	responseRole := models.RoleUser
	if role == models.RoleAdmin {
		redirect = "/admin_dashboard"
		responseRole = models.RoleAdmin
	}
	writeJSON(w, http.StatusOK, JSONResponse{
		"success":  true,
		"role":     responseRole,
		"redirect": redirect,
	})
	return nil
}

// AdminLoginHandler authenticates against the admin collection. A known
// student username is told it is on the wrong portal; anything else gets
// the generic credential failure.
func (h *AuthHandler) AdminLoginHandler(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.ValidationError("Invalid request payload")
	}

	username := strings.TrimSpace(req.Username)
	admin, ok := h.admins.Find(username)
	if !ok {
		if h.users.Exists(username) {
			return middleware.ForbiddenError("Access Denied: Not an Admin Account")
		}
		return middleware.AuthError("Invalid Admin Credentials")
	}
	if !auth.VerifyPassword(admin.Password, req.Password) {
		return middleware.AuthError("Wrong password")
	}

	if err := h.startSession(w, username, models.RoleAdmin); err != nil {
		return middleware.StorageError("Internal server error", err)
	}
	writeJSON(w, http.StatusOK, JSONResponse{
		"success":  true,
		"redirect": "/admin_dashboard",
	})
	return nil
}

// LogoutHandler ends the session if one exists. It succeeds either way.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) error {
	if token := session.TokenFromRequest(r, h.cfg.Cookie); token != "" {
		h.sessions.End(token)
	}
	session.ClearCookie(w, h.cfg.Cookie)

	writeJSON(w, http.StatusOK, JSONResponse{
		"success": true,
		"message": "Logged out",
	})
	return nil
}

func (h *AuthHandler) startSession(w http.ResponseWriter, username, role string) error {
	token, err := session.NewToken()
	if err != nil {
		return err
	}
	h.sessions.Start(token, session.New(username, role))
	session.SetCookie(w, h.cfg.Cookie, token)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
