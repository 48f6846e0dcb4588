package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"campus-events/middleware"
	"campus-events/models"
	"campus-events/repo"
)

type EventHandler struct {
	events *repo.Events
}

func NewEventHandler(events *repo.Events) *EventHandler {
	return &EventHandler{events: events}
}

// ListHandler returns the full event collection in insertion order. No
// auth required.
func (h *EventHandler) ListHandler(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.events.List())
	return nil
}

// SaveHandler replaces the whole collection with the posted array. Only
// the array shape is checked; elements are taken as-is, with fields the
// Event model does not know dropped. Serializes with AddHandler on the
// events lock.
func (h *EventHandler) SaveHandler(w http.ResponseWriter, r *http.Request) error {
	var raw []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw == nil {
		// a JSON null decodes into a nil slice without error
		return middleware.ValidationError("Provide a JSON array of events")
	}

	events := make([]models.Event, len(raw))
	for i, element := range raw {
		// Elements that do not decode stay zero-valued rather than
		// rejecting the batch.
		_ = json.Unmarshal(element, &events[i])
	}

	if err := h.events.ReplaceAll(events); err != nil {
		return middleware.StorageError("Failed to save events", err)
	}
	writeJSON(w, http.StatusOK, JSONResponse{
		"success": true,
		"message": "Events updated",
	})
	return nil
}

type addEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Image       string `json:"image"`
}

// AddHandler appends one event with a server-assigned id. The organizer
// is taken from the caller's session, or "Admin" for anonymous callers.
func (h *EventHandler) AddHandler(w http.ResponseWriter, r *http.Request) error {
	var req addEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.ValidationError("Invalid request payload")
	}

	title := strings.TrimSpace(req.Title)
	date := strings.TrimSpace(req.Date)
	category := strings.TrimSpace(req.Category)
	if title == "" || date == "" || category == "" {
		return middleware.ValidationError("title, date and category are required")
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		imageURL = strings.TrimSpace(req.Image)
	}

	organizer := "Admin"
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		organizer = s.Username
	}

	event, err := h.events.Add(models.Event{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Category:    category,
		Organizer:   organizer,
		ImageURL:    imageURL,
	})
	if err != nil {
		return middleware.StorageError("Failed to save event", err)
	}

	writeJSON(w, http.StatusCreated, JSONResponse{
		"success": true,
		"message": "Event added",
		"event":   event,
	})
	return nil
}
