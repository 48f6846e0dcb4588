package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"campus-events/middleware"
	"campus-events/repo"
)

type AttendanceHandler struct {
	attendance *repo.Attendance
}

func NewAttendanceHandler(attendance *repo.Attendance) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// GetHandler returns the caller's "going" event ids, sorted ascending.
func (h *AttendanceHandler) GetHandler(w http.ResponseWriter, r *http.Request) error {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return middleware.AuthError("Authentication required")
	}
	writeJSON(w, http.StatusOK, h.attendance.Get(s.Username))
	return nil
}

type attendanceRequest struct {
	// EventID accepts a JSON number or a numeric string.
	EventID json.RawMessage `json:"event_id"`
	Going   *bool           `json:"going"`
}

// UpdateHandler toggles one event id in the caller's set. going defaults
// to true; the operation is idempotent.
func (h *AttendanceHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) error {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return middleware.AuthError("Authentication required")
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.ValidationError("Invalid request payload")
	}
	if len(req.EventID) == 0 || string(req.EventID) == "null" {
		return middleware.ValidationError("event_id required")
	}

	eventID, err := coerceEventID(req.EventID)
	if err != nil {
		return middleware.ValidationError("invalid event_id")
	}

	going := true
	if req.Going != nil {
		going = *req.Going
	}

	ids, err := h.attendance.Set(s.Username, eventID, going)
	if err != nil {
		return middleware.StorageError("Failed to update attendance", err)
	}
	writeJSON(w, http.StatusOK, JSONResponse{
		"success": true,
		"events":  ids,
	})
	return nil
}

func coerceEventID(raw json.RawMessage) (int, error) {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return int(number), nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, err
	}
	return strconv.Atoi(text)
}
