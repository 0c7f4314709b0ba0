package state

import (
	"strings"

	"github.com/campussphere/campussphere/internal/domain/models"
)

// Pure list filters. Handlers run these over snapshots from the
// store; input order is always preserved.

// FilterEvents applies the discover-page filters: category and the
// eligible-only toggle, AND-composed. An empty or "all" category
// passes everything.
func FilterEvents(events []models.Event, category string, eligibleOnly bool, viewerDept string) []models.Event {
	category = strings.ToLower(strings.TrimSpace(category))
	var out []models.Event
	for _, e := range events {
		if category != "" && category != "all" && strings.ToLower(e.Category) != category {
			continue
		}
		if eligibleOnly && !e.EligibleFor(viewerDept) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FeaturedEvents keeps only featured events.
func FeaturedEvents(events []models.Event) []models.Event {
	var out []models.Event
	for _, e := range events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// Collab board tabs.
const (
	TabAll        = "all"
	TabMine       = "mine"
	TabInterested = "interested"
)

// FilterCollab applies the collab-board tab filter for a viewer.
// Unknown tabs behave like "all".
func FilterCollab(posts []models.CollabPost, tab string, viewerID int64) []models.CollabPost {
	switch tab {
	case TabMine:
		var out []models.CollabPost
		for _, p := range posts {
			if p.AuthorID == viewerID {
				out = append(out, p)
			}
		}
		return out
	case TabInterested:
		var out []models.CollabPost
		for _, p := range posts {
			if p.HasInterest(viewerID) {
				out = append(out, p)
			}
		}
		return out
	default:
		return posts
	}
}

// AnnouncementsFor keeps announcements targeting the given role.
func AnnouncementsFor(anns []models.Announcement, role string) []models.Announcement {
	var out []models.Announcement
	for _, a := range anns {
		if a.VisibleTo(role) {
			out = append(out, a)
		}
	}
	return out
}

// BannersFor keeps banner announcements targeting the given role.
func BannersFor(anns []models.Announcement, role string) []models.Announcement {
	var out []models.Announcement
	for _, a := range AnnouncementsFor(anns, role) {
		if a.Banner {
			out = append(out, a)
		}
	}
	return out
}

// PendingFaculty keeps faculty users awaiting verification.
func PendingFaculty(users []models.User) []models.User {
	var out []models.User
	for _, u := range users {
		if u.Role == models.RoleFaculty && u.Status == models.StatusPending {
			out = append(out, u)
		}
	}
	return out
}

// ProposalsByStatus keeps proposals in the given status; an empty
// status passes everything.
func ProposalsByStatus(proposals []models.Proposal, status string) []models.Proposal {
	if status == "" {
		return proposals
	}
	var out []models.Proposal
	for _, p := range proposals {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// ProposalsBySubmitter keeps a faculty member's own proposals.
func ProposalsBySubmitter(proposals []models.Proposal, submitter string) []models.Proposal {
	var out []models.Proposal
	for _, p := range proposals {
		if p.Submitter == submitter {
			out = append(out, p)
		}
	}
	return out
}
