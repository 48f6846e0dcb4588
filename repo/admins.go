package repo

import (
	"sync"

	"campus-events/models"
	"campus-events/storage"
)

const AdminsFile = "admins.json"

type Admins struct {
	mu      sync.Mutex
	backend storage.Backend
}

func NewAdmins(backend storage.Backend) *Admins {
	return &Admins{backend: backend}
}

func (a *Admins) Find(username string) (models.Admin, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	admins := storage.ReadJSON(a.backend, AdminsFile, []models.Admin{})
	for _, admin := range admins {
		if admin.Username == username {
			return admin, true
		}
	}
	return models.Admin{}, false
}
