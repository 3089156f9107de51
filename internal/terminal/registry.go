package terminal

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/bondar-aleksandr/netdesk/internal/device"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry keeps the open sessions of a server, each with its own device
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	newDev   func() *device.Device
	banner   []string
}

// NewRegistry creates an empty registry. newDev is called once per opened
// session.
func NewRegistry(newDev func() *device.Device, banner ...string) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		newDev:   newDev,
		banner:   banner,
	}
}

func (r *Registry) Open() (uuid.UUID, *Session) {
	id := uuid.New()
	s := NewSession(r.newDev(), r.banner...)

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id, s
}

func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close drops the session and its device
func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
