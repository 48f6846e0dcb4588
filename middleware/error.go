package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// AppHandler is an http.HandlerFunc that reports failures as errors;
// ErrorHandler maps them onto HTTP responses.
type AppHandler func(http.ResponseWriter, *http.Request) error

type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// ValidationError covers missing or malformed required input.
func ValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// AuthError covers bad credentials and missing sessions.
func AuthError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

// ForbiddenError covers authenticated callers using the wrong portal.
func ForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, nil)
}

// StorageError wraps a persistence failure. The cause is logged
// server-side; the caller sees only the generic message.
func StorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.wroteHeader {
		rw.status = statusCode
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

func ErrorHandler(handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("panic recovered: %v", recovered)
				if !rw.wroteHeader {
					WriteFailure(rw, r, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()

		if err := handler(rw, r); err != nil {
			handleError(rw, r, err)
		}
	}
}

func handleError(w *responseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *AppError
	if errors.As(err, &appErr) {
		status = appErr.Status
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		log.Printf("request failed: method=%s path=%s status=%d err=%v", r.Method, r.URL.Path, status, err)
	}

	if w.wroteHeader {
		return
	}

	WriteFailure(w, r, status, message)
}

// WriteFailure writes a {success:false} JSON body for API paths and a
// minimal HTML fragment for everything else.
func WriteFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(failureResponse{Success: false, Message: message})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, "<h3>%s</h3><p>%s</p>", http.StatusText(status), message)
}

// NotFoundHandler serves the router's fallback route.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			WriteFailure(w, r, http.StatusNotFound, "Not found")
			return
		}
		WriteFailure(w, r, http.StatusNotFound, "The requested resource was not found on the server.")
	})
}
