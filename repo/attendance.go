package repo

import (
	"sort"
	"sync"

	"campus-events/storage"
)

const AttendanceFile = "attendance.json"

// Attendance stores, per username, the set of event ids the user marked
// "going", persisted as a sorted ascending slice.
type Attendance struct {
	mu      sync.Mutex
	backend storage.Backend
}

func NewAttendance(backend storage.Backend) *Attendance {
	return &Attendance{backend: backend}
}

// Get returns the user's event ids, or an empty slice when the user has
// never toggled attendance.
func (a *Attendance) Get(username string) []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	attendance := storage.ReadJSON(a.backend, AttendanceFile, map[string][]int{})
	ids := attendance[username]
	if ids == nil {
		return []int{}
	}
	return ids
}

// Set adds or removes eventID from the user's set and persists the
// result. Adding a present id or removing an absent one is a no-op that
// still succeeds.
func (a *Attendance) Set(username string, eventID int, going bool) ([]int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	attendance := storage.ReadJSON(a.backend, AttendanceFile, map[string][]int{})
	set := make(map[int]struct{}, len(attendance[username])+1)
	for _, id := range attendance[username] {
		set[id] = struct{}{}
	}
	if going {
		set[eventID] = struct{}{}
	} else {
		delete(set, eventID)
	}

	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	attendance[username] = ids
	if err := storage.WriteJSON(a.backend, AttendanceFile, attendance); err != nil {
		return nil, err
	}
	return ids, nil
}
