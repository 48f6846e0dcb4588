package session

import (
	"net/http"
	"time"

	"campus-events/config"
)

// SetCookie issues the session token as a browser-session cookie (no
// MaxAge), so its lifetime is whatever the client applies to session
// cookies.
func SetCookie(w http.ResponseWriter, cfg config.CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
	})
}

func ClearCookie(w http.ResponseWriter, cfg config.CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// TokenFromRequest extracts the session token, or "" when the client sent
// no cookie.
func TokenFromRequest(r *http.Request, cfg config.CookieConfig) string {
	cookie, err := r.Cookie(cfg.Name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}
