package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-events/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, handler middleware.AppHandler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	middleware.ErrorHandler(handler).ServeHTTP(rec, req)
	return rec
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		err    *middleware.AppError
		status int
	}{
		{"validation", middleware.ValidationError("bad input"), http.StatusBadRequest},
		{"auth", middleware.AuthError("who are you"), http.StatusUnauthorized},
		{"forbidden", middleware.ForbiddenError("wrong portal"), http.StatusForbidden},
		{"storage", middleware.StorageError("save failed", errors.New("disk full")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := execute(t, func(w http.ResponseWriter, r *http.Request) error {
				return tt.err
			}, "/api/things")
			assert.Equal(t, tt.status, rec.Code)
			body := decodeFailure(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.err.Message, body["message"])
		})
	}
}

func TestErrorHandlerGenericMessageForUnknownError(t *testing.T) {
	rec := execute(t, func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("internal detail that must not leak")
	}, "/api/things")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeFailure(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestErrorHandlerPanicRecovery(t *testing.T) {
	rec := execute(t, func(w http.ResponseWriter, r *http.Request) error {
		panic("boom")
	}, "/api/things")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestErrorHandlerSuccessPassthrough(t *testing.T) {
	rec := execute(t, func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}, "/api/things")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWriteFailureFormatDependsOnPath(t *testing.T) {
	apiReq := httptest.NewRequest("GET", "/api/missing", nil)
	apiRec := httptest.NewRecorder()
	middleware.WriteFailure(apiRec, apiReq, http.StatusNotFound, "Not found")
	assert.Contains(t, apiRec.Header().Get("Content-Type"), "application/json")

	pageReq := httptest.NewRequest("GET", "/missing", nil)
	pageRec := httptest.NewRecorder()
	middleware.WriteFailure(pageRec, pageReq, http.StatusNotFound, "nothing here")
	assert.Contains(t, pageRec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, pageRec.Body.String(), "<h3>")
}

func TestNotFoundHandler(t *testing.T) {
	handler := middleware.NotFoundHandler()

	apiRec := httptest.NewRecorder()
	handler.ServeHTTP(apiRec, httptest.NewRequest("GET", "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, apiRec.Code)
	body := decodeFailure(t, apiRec)
	assert.Equal(t, "Not found", body["message"])

	pageRec := httptest.NewRecorder()
	handler.ServeHTTP(pageRec, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, pageRec.Code)
	assert.Contains(t, pageRec.Body.String(), "was not found")
}
