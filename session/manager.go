package session

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Manager is a registry of sessions safe for concurrent use.
type Manager struct {
	base     Config
	logger   *slog.Logger
	sessions map[uuid.UUID]*Session
	sync.RWMutex
}

// NewManager returns an empty registry. Sessions it creates start from c,
// with per-call overrides applied by Create.
func NewManager(c Config) *Manager {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	return &Manager{
		base:     c,
		logger:   c.Logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create builds a session from c merged over the manager's base config and
// registers it.
func (m *Manager) Create(c Config) (*Session, error) {
	s, err := New(c.merge(m.base))
	if err != nil {
		return nil, err
	}

	m.Lock()
	m.sessions[s.ID()] = s
	n := len(m.sessions)
	m.Unlock()

	m.logger.Info("session registered", "session_id", s.ID().String(), "sessions", n)

	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

// Delete removes the session with the given id.
func (m *Manager) Delete(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	m.logger.Info("session removed", "session_id", id.String(), "sessions", len(m.sessions))

	return nil
}

// List returns the registered ids in byte order.
func (m *Manager) List() []uuid.UUID {
	m.RLock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	return ids
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.RLock()
	defer m.RUnlock()

	return len(m.sessions)
}
