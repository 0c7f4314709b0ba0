package pagenav

import "testing"

func studentSet() *PageSet {
	return New("/student",
		Page{Slug: "overview", Title: "Overview", Icon: "home"},
		Page{Slug: "discover", Title: "Discover Events", Icon: "compass"},
		Page{Slug: "collab", Title: "Collab Board", Icon: "users"},
	)
}

func TestResolve_Known(t *testing.T) {
	s := studentSet()
	p, ok := s.Resolve("discover")
	if !ok {
		t.Fatal("expected discover to resolve")
	}
	if p.Title != "Discover Events" {
		t.Errorf("Title: got %q", p.Title)
	}
}

func TestResolve_EmptyFallsBackToDefault(t *testing.T) {
	s := studentSet()
	p, ok := s.Resolve("")
	if !ok || p.Slug != "overview" {
		t.Errorf("got (%+v, %v), want default overview", p, ok)
	}
}

func TestResolve_Unknown(t *testing.T) {
	s := studentSet()
	if _, ok := s.Resolve("payments"); ok {
		t.Fatal("unknown slug must not resolve")
	}
}

func TestLinks_ExactlyOneActive(t *testing.T) {
	s := studentSet()
	links := s.Links("collab")

	active := 0
	for _, l := range links {
		if l.Active {
			active++
			if l.Slug != "collab" {
				t.Errorf("wrong active link: %q", l.Slug)
			}
		}
	}
	if active != 1 {
		t.Errorf("active count: got %d, want 1", active)
	}
	if links[1].Href != "/student/discover" {
		t.Errorf("Href: got %q", links[1].Href)
	}
}

func TestLinks_NoActiveForUnknown(t *testing.T) {
	s := studentSet()
	for _, l := range s.Links("payments") {
		if l.Active {
			t.Errorf("no link should be active for unknown slug, got %q", l.Slug)
		}
	}
}
