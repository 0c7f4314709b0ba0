package state

import (
	"sync"

	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/google/uuid"
)

// Registry maps session-held ids to dashboard working sets. A set is
// created at sign-in and released at logout.
type Registry struct {
	mu     sync.RWMutex
	states map[string]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*Store)}
}

// Create seeds a working set for viewer and returns its id.
func (r *Registry) Create(viewer models.User) (string, *Store) {
	id := uuid.NewString()
	s := NewStore(viewer)

	r.mu.Lock()
	r.states[id] = s
	r.mu.Unlock()

	return id, s
}

// Get looks up a working set by id.
func (r *Registry) Get(id string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.states[id]
	return s, ok
}

// GetOrCreate returns the working set for id, seeding a fresh one for
// viewer when the id is unknown (e.g. after a server restart with a
// surviving session cookie).
func (r *Registry) GetOrCreate(id string, viewer models.User) *Store {
	if s, ok := r.Get(id); ok {
		return s
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.states[id]; ok {
		return s
	}
	s := NewStore(viewer)
	if id != "" {
		r.states[id] = s
	}
	return s
}

// Release drops a working set.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	delete(r.states, id)
	r.mu.Unlock()
}

// Len reports the number of live working sets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
