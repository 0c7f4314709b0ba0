package state

import (
	"time"

	"github.com/campussphere/campussphere/internal/domain/models"
)

// Action methods mutate the working set and return the transient
// notice to flash. Unknown ids never panic; they produce an error
// notice and leave the set unchanged.

func unknownID(what string) models.Notice {
	return models.Notice{
		Title:   "Not found",
		Message: "That " + what + " no longer exists.",
		Kind:    models.NoticeError,
	}
}

// RegisterForEvent registers the viewer for an event. Registering
// twice is a no-op with an info notice.
func (s *Store) RegisterForEvent(eventID int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findEvent(eventID)
	if i < 0 {
		return unknownID("event")
	}
	if _, ok := s.registered[eventID]; ok {
		return models.Notice{
			Title:   "Already registered",
			Message: "You are already registered for " + s.events[i].Title + ".",
			Kind:    models.NoticeInfo,
		}
	}

	s.registered[eventID] = struct{}{}
	s.events[i].Registrations++

	return models.Notice{
		Title:   "Registered!",
		Message: "You are registered for " + s.events[i].Title + ". See you there!",
		Kind:    models.NoticeSuccess,
	}
}

// ExpressInterest marks the viewer interested in a collab post. Posts
// with a Google Form link collect interest through the form instead;
// the working set is not mutated and the caller redirects to the link.
func (s *Store) ExpressInterest(postID int64) (models.Notice, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPost(postID)
	if i < 0 {
		return unknownID("post"), ""
	}
	p := &s.posts[i]

	if p.GFormLink != "" {
		return models.Notice{
			Title:   "Opening form",
			Message: "This post collects interest through a Google Form.",
			Kind:    models.NoticeInfo,
		}, p.GFormLink
	}

	if p.HasInterest(s.viewer.ID) {
		return models.Notice{
			Title:   "Already interested",
			Message: "You have already expressed interest in this post.",
			Kind:    models.NoticeInfo,
		}, ""
	}

	p.InterestedBy = append(p.InterestedBy, s.viewer.ID)
	p.Interested = len(p.InterestedBy)

	return models.Notice{
		Title:   "Interest sent!",
		Message: p.Author + " will be notified of your interest.",
		Kind:    models.NoticeSuccess,
	}, ""
}

// SubmitProposal files a new proposal as pending and prepends it.
func (s *Store) SubmitProposal(p models.Proposal) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID()
	p.Status = models.ProposalPending
	s.proposals = append([]models.Proposal{p}, s.proposals...)

	return models.Notice{
		Title:   "Proposal submitted",
		Message: p.Title + " is awaiting admin review.",
		Kind:    models.NoticeSuccess,
	}
}

// ActOnProposal applies an admin review action: approve, deny, or
// changes (request revision). Feedback is stored with the proposal.
// A proposal in revision_requested remains actionable.
func (s *Store) ActOnProposal(id int64, action, feedback string) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProposal(id)
	if i < 0 {
		return unknownID("proposal")
	}

	var status, verb string
	switch action {
	case "approve":
		status, verb = models.ProposalApproved, "approved"
	case "deny":
		status, verb = models.ProposalDenied, "denied"
	case "changes":
		status, verb = models.ProposalRevisionRequested, "sent back for revision"
	default:
		return models.Notice{
			Title:   "Unknown action",
			Message: "That review action is not recognized.",
			Kind:    models.NoticeError,
		}
	}

	s.proposals[i].Status = status
	s.proposals[i].Feedback = feedback

	return models.Notice{
		Title:   "Proposal " + verb,
		Message: s.proposals[i].Title + " was " + verb + ".",
		Kind:    models.NoticeSuccess,
	}
}

// CreateEvent prepends a new event.
func (s *Store) CreateEvent(e models.Event) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID()
	s.events = append([]models.Event{e}, s.events...)

	return models.Notice{
		Title:   "Event created",
		Message: e.Title + " is now listed.",
		Kind:    models.NoticeSuccess,
	}
}

// UpdateEvent replaces an event's editable fields.
func (s *Store) UpdateEvent(e models.Event) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findEvent(e.ID)
	if i < 0 {
		return unknownID("event")
	}

	// Registrations are owned by the register action.
	e.Registrations = s.events[i].Registrations
	s.events[i] = e

	return models.Notice{
		Title:   "Event updated",
		Message: e.Title + " was saved.",
		Kind:    models.NoticeSuccess,
	}
}

// ToggleFeatured flips an event's featured flag.
func (s *Store) ToggleFeatured(id int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findEvent(id)
	if i < 0 {
		return unknownID("event")
	}
	s.events[i].Featured = !s.events[i].Featured

	msg := s.events[i].Title + " is no longer featured."
	if s.events[i].Featured {
		msg = s.events[i].Title + " is now featured."
	}
	return models.Notice{Title: "Featured updated", Message: msg, Kind: models.NoticeSuccess}
}

// DeleteEvent removes an event and reconciles the viewer's
// registration set so no dangling ids remain.
func (s *Store) DeleteEvent(id int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findEvent(id)
	if i < 0 {
		return unknownID("event")
	}
	title := s.events[i].Title
	s.events = append(s.events[:i], s.events[i+1:]...)
	delete(s.registered, id)

	return models.Notice{
		Title:   "Event removed",
		Message: title + " was deleted.",
		Kind:    models.NoticeSuccess,
	}
}

// CreateCollabPost prepends a post authored by the viewer.
func (s *Store) CreateCollabPost(p models.CollabPost) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID()
	p.Author = s.viewer.Name
	p.AuthorID = s.viewer.ID
	p.AuthorRole = s.viewer.Role
	p.InterestedBy = nil
	p.Interested = 0
	s.posts = append([]models.CollabPost{p}, s.posts...)

	return models.Notice{
		Title:   "Post published",
		Message: p.Title + " is now on the collab board.",
		Kind:    models.NoticeSuccess,
	}
}

// DeleteCollabPost removes a post. Interest marks die with the post,
// so no interested set can reference it afterwards.
func (s *Store) DeleteCollabPost(id int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPost(id)
	if i < 0 {
		return unknownID("post")
	}
	title := s.posts[i].Title
	s.posts = append(s.posts[:i], s.posts[i+1:]...)

	return models.Notice{
		Title:   "Post removed",
		Message: title + " was deleted.",
		Kind:    models.NoticeSuccess,
	}
}

// PublishAnnouncement prepends a new announcement.
func (s *Store) PublishAnnouncement(a models.Announcement) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.announcements = append([]models.Announcement{a}, s.announcements...)

	return models.Notice{
		Title:   "Announcement published",
		Message: a.Title + " was sent to " + a.Target + ".",
		Kind:    models.NoticeSuccess,
	}
}

// ApproveUser verifies a pending account.
func (s *Store) ApproveUser(id int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUser(id)
	if i < 0 {
		return unknownID("user")
	}
	s.users[i].Status = models.StatusVerified

	return models.Notice{
		Title:   "Faculty Approved",
		Message: s.users[i].Name + " is now verified.",
		Kind:    models.NoticeSuccess,
	}
}

// DenyUser removes a pending account.
func (s *Store) DenyUser(id int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUser(id)
	if i < 0 {
		return unknownID("user")
	}
	name := s.users[i].Name
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.clearInterestMarks(id)

	return models.Notice{
		Title:   "Registration Denied",
		Message: name + "'s request was denied.",
		Kind:    models.NoticeSuccess,
	}
}

// RemoveUser removes an account and reconciles interest marks so
// counts stay consistent with the sets.
func (s *Store) RemoveUser(id int64) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUser(id)
	if i < 0 {
		return unknownID("user")
	}
	name := s.users[i].Name
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.clearInterestMarks(id)

	return models.Notice{
		Title:   "User Removed",
		Message: name + " was removed from the platform.",
		Kind:    models.NoticeSuccess,
	}
}

// clearInterestMarks drops userID from every post's interested set.
// Caller holds the lock.
func (s *Store) clearInterestMarks(userID int64) {
	for i := range s.posts {
		p := &s.posts[i]
		for j, uid := range p.InterestedBy {
			if uid == userID {
				p.InterestedBy = append(p.InterestedBy[:j], p.InterestedBy[j+1:]...)
				p.Interested = len(p.InterestedBy)
				break
			}
		}
	}
}

// UpdateProfile updates the viewer's editable profile fields.
func (s *Store) UpdateProfile(bio string, interests []string, year string) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewer.Bio = bio
	s.viewer.Interests = interests
	s.viewer.Year = year

	return models.Notice{
		Title:   "Profile saved",
		Message: "Your profile changes were saved.",
		Kind:    models.NoticeSuccess,
	}
}

// AddAchievement prepends an achievement.
func (s *Store) AddAchievement(a models.Achievement) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID()
	s.achievements = append([]models.Achievement{a}, s.achievements...)

	return models.Notice{
		Title:   "Achievement added",
		Message: a.Title + " was added to your list.",
		Kind:    models.NoticeSuccess,
	}
}

// ToggleAchievementSelected marks or unmarks an achievement for
// export. Unknown ids are ignored.
func (s *Store) ToggleAchievementSelected(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.achievements {
		if s.achievements[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return
	}

	if _, ok := s.selectedAchievements[id]; ok {
		delete(s.selectedAchievements, id)
	} else {
		s.selectedAchievements[id] = struct{}{}
	}
}
