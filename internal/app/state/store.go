// Package state holds the per-session dashboard working set: the
// sample records a signed-in user sees and mutates during a visit.
// Durable accounts live in Mongo; everything here is session-scoped.
package state

import (
	"sync"
	"time"

	"github.com/campussphere/campussphere/internal/domain/models"
)

// Store is one user's dashboard working set. All methods are safe for
// concurrent use by request handlers sharing a session.
type Store struct {
	mu sync.Mutex

	viewer models.User

	users         []models.User
	events        []models.Event
	proposals     []models.Proposal
	posts         []models.CollabPost
	announcements []models.Announcement
	achievements  []models.Achievement

	// Event ids the viewer registered for.
	registered map[int64]struct{}

	// Achievement ids marked for export.
	selectedAchievements map[int64]struct{}

	lastID int64
}

// NewStore builds a working set for viewer seeded with sample data.
func NewStore(viewer models.User) *Store {
	s := &Store{
		viewer:               viewer,
		registered:           make(map[int64]struct{}),
		selectedAchievements: make(map[int64]struct{}),
	}
	seed(s)
	return s
}

// nextID returns a millisecond-timestamp id, strictly increasing so
// rapid successive creates never collide.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Viewer returns the user this working set belongs to.
func (s *Store) Viewer() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer
}

// Users returns a copy of the user list.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

// Events returns a copy of the event list.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Event(nil), s.events...)
}

// Proposals returns a copy of the proposal list.
func (s *Store) Proposals() []models.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Proposal(nil), s.proposals...)
}

// CollabPosts returns a copy of the collab board.
func (s *Store) CollabPosts() []models.CollabPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CollabPost, len(s.posts))
	for i, p := range s.posts {
		p.InterestedBy = append([]int64(nil), p.InterestedBy...)
		out[i] = p
	}
	return out
}

// Announcements returns a copy of the announcement list.
func (s *Store) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Announcement(nil), s.announcements...)
}

// Achievements returns a copy of the achievements list.
func (s *Store) Achievements() []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Achievement(nil), s.achievements...)
}

// SelectedAchievementIDs returns the ids marked for export.
func (s *Store) SelectedAchievementIDs() map[int64]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]bool, len(s.selectedAchievements))
	for id := range s.selectedAchievements {
		out[id] = true
	}
	return out
}

// SelectedAchievements returns the marked achievements in list order.
func (s *Store) SelectedAchievements() []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Achievement
	for _, a := range s.achievements {
		if _, ok := s.selectedAchievements[a.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// RegisteredEventIDs returns the set of events the viewer registered
// for.
func (s *Store) RegisteredEventIDs() map[int64]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]bool, len(s.registered))
	for id := range s.registered {
		out[id] = true
	}
	return out
}

// RegisteredEvents returns the events the viewer registered for, in
// event-list order.
func (s *Store) RegisteredEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Event
	for _, e := range s.events {
		if _, ok := s.registered[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) findEvent(id int64) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findPost(id int64) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findUser(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findProposal(id int64) int {
	for i := range s.proposals {
		if s.proposals[i].ID == id {
			return i
		}
	}
	return -1
}
