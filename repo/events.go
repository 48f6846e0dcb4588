package repo

import (
	"sync"

	"campus-events/models"
	"campus-events/storage"
)

const EventsFile = "events.json"

type Events struct {
	mu      sync.Mutex
	backend storage.Backend
}

func NewEvents(backend storage.Backend) *Events {
	return &Events{backend: backend}
}

func (e *Events) List() []models.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return storage.ReadJSON(e.backend, EventsFile, []models.Event{})
}

// ReplaceAll swaps the stored collection for events wholesale. It shares
// the mutex with Add, so a bulk replace cannot interleave with an id
// computation.
func (e *Events) ReplaceAll(events []models.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return storage.WriteJSON(e.backend, EventsFile, events)
}

// Add assigns the next id and appends the event. The id is
// max(existing)+1; if every stored id is zero-valued the count-based
// fallback applies, matching the legacy behavior for records that predate
// server-side ids.
func (e *Events) Add(event models.Event) (models.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	events := storage.ReadJSON(e.backend, EventsFile, []models.Event{})
	event.ID = nextID(events)
	events = append(events, event)
	if err := storage.WriteJSON(e.backend, EventsFile, events); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func nextID(events []models.Event) int {
	maxID := 0
	for _, event := range events {
		if event.ID > maxID {
			maxID = event.ID
		}
	}
	if maxID == 0 && len(events) > 0 {
		return len(events) + 1
	}
	return maxID + 1
}
