package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"campus-events/models"
)

// Session is the server-held state behind one client token.
type Session struct {
	Username string
	Role     string
	IsAdmin  bool
}

// New derives IsAdmin from role so the two can never disagree.
func New(username, role string) Session {
	return Session{
		Username: username,
		Role:     role,
		IsAdmin:  role == models.RoleAdmin,
	}
}

// Store maps opaque client tokens to sessions. The store performs no
// expiry of its own; the cookie carrying the token is a browser-session
// cookie, so lifetime follows the transport.
type Store interface {
	Start(token string, s Session)
	Get(token string) (Session, bool)
	End(token string)
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Start(token string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = s
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *MemoryStore) End(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

var randRead = rand.Read

// NewToken returns a 256-bit random token, hex encoded.
func NewToken() (string, error) {
	buffer := make([]byte, 32)
	if _, err := randRead(buffer); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer), nil
}
