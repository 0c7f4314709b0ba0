package state

import (
	"testing"

	"github.com/campussphere/campussphere/internal/domain/models"
)

func TestRegistry_CreateGetRelease(t *testing.T) {
	r := NewRegistry()

	id, s := r.Create(models.User{ID: 1, Name: "Ada", Role: models.RoleStudent})
	if id == "" || s == nil {
		t.Fatal("Create returned empty id or nil store")
	}

	got, ok := r.Get(id)
	if !ok || got != s {
		t.Fatal("Get should return the created store")
	}

	r.Release(id)
	if _, ok := r.Get(id); ok {
		t.Fatal("store should be gone after Release")
	}
	if r.Len() != 0 {
		t.Errorf("Len: got %d, want 0", r.Len())
	}
}

func TestRegistry_GetOrCreate_Reseeds(t *testing.T) {
	r := NewRegistry()

	// Unknown id (e.g. cookie survived a restart) seeds a fresh set.
	s := r.GetOrCreate("stale-id", models.User{ID: 2, Name: "Grace", Role: models.RoleFaculty})
	if s == nil {
		t.Fatal("expected a seeded store")
	}
	if s.Viewer().Name != "Grace" {
		t.Errorf("viewer: %+v", s.Viewer())
	}

	// Same id now returns the same store.
	again := r.GetOrCreate("stale-id", models.User{ID: 3})
	if again != s {
		t.Error("second GetOrCreate should return the existing store")
	}
}

func TestRegistry_DistinctSessionsAreIsolated(t *testing.T) {
	r := NewRegistry()

	id1, s1 := r.Create(models.User{ID: 1, Name: "A", Role: models.RoleStudent})
	id2, s2 := r.Create(models.User{ID: 2, Name: "B", Role: models.RoleStudent})
	if id1 == id2 {
		t.Fatal("ids should differ")
	}

	s1.CreateEvent(models.Event{Title: "Only in s1"})
	if s2.Events()[0].Title == "Only in s1" {
		t.Error("mutation leaked across working sets")
	}
}
