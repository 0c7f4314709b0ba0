package pagenav

import "fmt"

// Page is one entry in a dashboard's sidebar.
type Page struct {
	Slug  string
	Title string
	Icon  string
}

// Link is a sidebar entry resolved for the current request. Exactly
// one link is Active for a known page; none when the shell is shown
// without an active section.
type Link struct {
	Slug   string
	Title  string
	Icon   string
	Href   string
	Active bool
}

// PageSet is the ordered page table for one dashboard. Navigation is
// a lookup into this table; unknown slugs fall back to the shell.
type PageSet struct {
	base  string // mount path, e.g. "/student"
	pages []Page
	index map[string]Page
}

// New builds a PageSet mounted at base. The first page is the default
// shown when the dashboard is opened without a page slug.
func New(base string, pages ...Page) *PageSet {
	idx := make(map[string]Page, len(pages))
	for _, p := range pages {
		idx[p.Slug] = p
	}
	return &PageSet{base: base, pages: pages, index: idx}
}

// Default returns the dashboard's landing page.
func (s *PageSet) Default() Page {
	if len(s.pages) == 0 {
		return Page{}
	}
	return s.pages[0]
}

// Resolve looks up a page by slug. ok is false for unknown slugs; the
// caller renders the shell with no active section in that case.
func (s *PageSet) Resolve(slug string) (Page, bool) {
	if slug == "" {
		return s.Default(), true
	}
	p, ok := s.index[slug]
	return p, ok
}

// Links builds the sidebar for the given active slug.
func (s *PageSet) Links(active string) []Link {
	links := make([]Link, 0, len(s.pages))
	for _, p := range s.pages {
		links = append(links, Link{
			Slug:   p.Slug,
			Title:  p.Title,
			Icon:   p.Icon,
			Href:   fmt.Sprintf("%s/%s", s.base, p.Slug),
			Active: p.Slug == active,
		})
	}
	return links
}
