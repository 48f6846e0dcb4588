// Package repo provides typed, lock-guarded views over the JSON document
// store. Each repository owns the mutex for its collection and holds it
// for the whole read-modify-write span, so concurrent handlers cannot
// lose updates. No repository ever takes another repository's lock.
package repo

import (
	"errors"
	"sync"

	"campus-events/auth"
	"campus-events/models"
	"campus-events/storage"
)

const UsersFile = "users.json"

var ErrUsernameTaken = errors.New("username already exists")

type Users struct {
	mu      sync.Mutex
	backend storage.Backend
}

func NewUsers(backend storage.Backend) *Users {
	return &Users{backend: backend}
}

func (u *Users) List() []models.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return storage.ReadJSON(u.backend, UsersFile, []models.User{})
}

// Create appends the user and persists the collection. The uniqueness
// check runs under the lock; the match is case-sensitive.
func (u *Users) Create(user models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	users := storage.ReadJSON(u.backend, UsersFile, []models.User{})
	for _, existing := range users {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	users = append(users, user)
	return storage.WriteJSON(u.backend, UsersFile, users)
}

func (u *Users) Exists(username string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	users := storage.ReadJSON(u.backend, UsersFile, []models.User{})
	for _, user := range users {
		if user.Username == username {
			return true
		}
	}
	return false
}

// FindByCredentials returns the user whose username matches and whose
// stored credential verifies against password.
func (u *Users) FindByCredentials(username, password string) (models.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	users := storage.ReadJSON(u.backend, UsersFile, []models.User{})
	for _, user := range users {
		if user.Username == username && auth.VerifyPassword(user.Password, password) {
			return user, true
		}
	}
	return models.User{}, false
}
