package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session pairs a store with the last time its shopper touched it.
type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager hands out per-session stores and serializes access to them. Cart
// state lives in memory for the lifetime of the session only.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
}

const defaultSessionTTL = 24 * time.Hour

func NewManager() *Manager {
	m := &Manager{
		sessions: make(map[string]*session),
		ttl:      defaultSessionTTL,
	}
	go m.cleanupLoop()
	return m
}

// With runs fn against the session's store under the manager lock, minting a
// fresh session id when the client has none yet. The returned id must be
// echoed back to the client.
func (m *Manager) With(id string, fn func(*Store)) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.lastSeen = time.Now()
			fn(s.store)
			return id
		}
	}

	if id == "" {
		id = uuid.New().String()
	}
	s := &session{store: NewStore(), lastSeen: time.Now()}
	m.sessions[id] = s
	fn(s.store)
	return id
}

func (m *Manager) cleanupLoop() {
	for {
		time.Sleep(time.Minute)

		m.mu.Lock()
		for id, s := range m.sessions {
			if time.Since(s.lastSeen) > m.ttl {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
