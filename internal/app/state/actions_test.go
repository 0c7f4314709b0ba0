package state

import (
	"testing"

	"github.com/campussphere/campussphere/internal/domain/models"
)

func newViewerStore() *Store {
	return NewStore(models.User{ID: 42, Name: "Priya Sharma", Role: models.RoleStudent, Dept: "Computer Science"})
}

func TestRegisterForEvent(t *testing.T) {
	s := newViewerStore()
	before := s.Events()[0]

	n := s.RegisterForEvent(before.ID)
	if n.Kind != models.NoticeSuccess {
		t.Fatalf("notice: %+v", n)
	}
	if got := s.Events()[0].Registrations; got != before.Registrations+1 {
		t.Errorf("registrations: got %d, want %d", got, before.Registrations+1)
	}
	if !s.RegisteredEventIDs()[before.ID] {
		t.Error("event should be in the registered set")
	}
}

func TestRegisterForEvent_Idempotent(t *testing.T) {
	s := newViewerStore()
	id := s.Events()[0].ID

	s.RegisterForEvent(id)
	after := s.Events()[0].Registrations

	n := s.RegisterForEvent(id)
	if n.Kind != models.NoticeInfo {
		t.Errorf("second registration should be an info notice, got %q", n.Kind)
	}
	if got := s.Events()[0].Registrations; got != after {
		t.Errorf("registrations changed on repeat: got %d, want %d", got, after)
	}
}

func TestRegisterForEvent_UnknownID(t *testing.T) {
	s := newViewerStore()
	n := s.RegisterForEvent(99999)
	if n.Kind != models.NoticeError {
		t.Errorf("unknown id should produce an error notice, got %q", n.Kind)
	}
}

func TestExpressInterest(t *testing.T) {
	s := newViewerStore()

	// Post 2 has no form link in the seed data.
	n, link := s.ExpressInterest(2)
	if link != "" {
		t.Fatalf("unexpected redirect link %q", link)
	}
	if n.Kind != models.NoticeSuccess {
		t.Fatalf("notice: %+v", n)
	}

	var post models.CollabPost
	for _, p := range s.CollabPosts() {
		if p.ID == 2 {
			post = p
		}
	}
	if !post.HasInterest(42) {
		t.Error("viewer should be in the interested set")
	}
	if post.Interested != len(post.InterestedBy) {
		t.Errorf("count %d != set size %d", post.Interested, len(post.InterestedBy))
	}
}

func TestExpressInterest_Idempotent(t *testing.T) {
	s := newViewerStore()
	s.ExpressInterest(2)

	var before int
	for _, p := range s.CollabPosts() {
		if p.ID == 2 {
			before = p.Interested
		}
	}

	n, _ := s.ExpressInterest(2)
	if n.Kind != models.NoticeInfo {
		t.Errorf("repeat interest should be an info notice, got %q", n.Kind)
	}
	for _, p := range s.CollabPosts() {
		if p.ID == 2 && p.Interested != before {
			t.Errorf("count changed on repeat: got %d, want %d", p.Interested, before)
		}
	}
}

func TestExpressInterest_GoogleFormShortCircuit(t *testing.T) {
	s := newViewerStore()

	// Post 1 carries a form link in the seed data.
	var before models.CollabPost
	for _, p := range s.CollabPosts() {
		if p.ID == 1 {
			before = p
		}
	}

	n, link := s.ExpressInterest(1)
	if link == "" {
		t.Fatal("expected a redirect link for a form-backed post")
	}
	if n.Kind != models.NoticeInfo {
		t.Errorf("notice kind: got %q", n.Kind)
	}
	for _, p := range s.CollabPosts() {
		if p.ID == 1 {
			if p.Interested != before.Interested || p.HasInterest(42) {
				t.Error("form-backed post must not be mutated")
			}
		}
	}
}

func TestSubmitProposal_PrependsPending(t *testing.T) {
	s := newViewerStore()
	before := len(s.Proposals())

	s.SubmitProposal(models.Proposal{Title: "Quantum Computing Primer", Submitter: "Dr. Vance"})

	got := s.Proposals()
	if len(got) != before+1 {
		t.Fatalf("len: got %d, want %d", len(got), before+1)
	}
	if got[0].Title != "Quantum Computing Primer" {
		t.Error("new proposal should be first")
	}
	if got[0].Status != models.ProposalPending {
		t.Errorf("status: got %q, want pending", got[0].Status)
	}
	if got[0].ID == 0 {
		t.Error("proposal should get an id")
	}
}

func TestActOnProposal_Transitions(t *testing.T) {
	cases := map[string]string{
		"approve": models.ProposalApproved,
		"deny":    models.ProposalDenied,
		"changes": models.ProposalRevisionRequested,
	}
	for action, want := range cases {
		s := newViewerStore()
		id := s.Proposals()[0].ID

		n := s.ActOnProposal(id, action, "Please clarify the budget.")
		if n.Kind != models.NoticeSuccess {
			t.Errorf("%s: notice %+v", action, n)
		}
		got := s.Proposals()[0]
		if got.Status != want {
			t.Errorf("%s: status got %q, want %q", action, got.Status, want)
		}
		if got.Feedback != "Please clarify the budget." {
			t.Errorf("%s: feedback not stored", action)
		}
	}
}

func TestActOnProposal_RevisionRemainsActionable(t *testing.T) {
	s := newViewerStore()
	id := s.Proposals()[0].ID

	s.ActOnProposal(id, "changes", "tighten scope")
	n := s.ActOnProposal(id, "approve", "")
	if n.Kind != models.NoticeSuccess {
		t.Fatalf("revision_requested proposal should still be approvable: %+v", n)
	}
	if got := s.Proposals()[0].Status; got != models.ProposalApproved {
		t.Errorf("status: got %q", got)
	}
}

func TestActOnProposal_UnknownAction(t *testing.T) {
	s := newViewerStore()
	id := s.Proposals()[0].ID
	before := s.Proposals()[0].Status

	n := s.ActOnProposal(id, "escalate", "")
	if n.Kind != models.NoticeError {
		t.Errorf("unknown action should error, got %q", n.Kind)
	}
	if got := s.Proposals()[0].Status; got != before {
		t.Errorf("status mutated by unknown action: %q", got)
	}
}

func TestCreateEvent_Prepends(t *testing.T) {
	s := newViewerStore()
	before := len(s.Events())

	s.CreateEvent(models.Event{Title: "Robotics Expo", Category: "Technical"})

	got := s.Events()
	if len(got) != before+1 || got[0].Title != "Robotics Expo" {
		t.Fatalf("new event should be first, got %q", got[0].Title)
	}
}

func TestUpdateEvent_PreservesRegistrations(t *testing.T) {
	s := newViewerStore()
	e := s.Events()[0]
	s.RegisterForEvent(e.ID)
	want := s.Events()[0].Registrations

	e.Title = "Renamed Challenge"
	e.Registrations = 0
	s.UpdateEvent(e)

	got := s.Events()[0]
	if got.Title != "Renamed Challenge" {
		t.Errorf("title: got %q", got.Title)
	}
	if got.Registrations != want {
		t.Errorf("registrations: got %d, want %d", got.Registrations, want)
	}
}

func TestToggleFeatured(t *testing.T) {
	s := newViewerStore()
	e := s.Events()[0]

	s.ToggleFeatured(e.ID)
	if got := s.Events()[0].Featured; got == e.Featured {
		t.Error("featured flag should flip")
	}
	s.ToggleFeatured(e.ID)
	if got := s.Events()[0].Featured; got != e.Featured {
		t.Error("featured flag should flip back")
	}
}

func TestDeleteEvent_ReconcilesRegistrations(t *testing.T) {
	s := newViewerStore()
	id := s.Events()[0].ID
	s.RegisterForEvent(id)

	n := s.DeleteEvent(id)
	if n.Kind != models.NoticeSuccess {
		t.Fatalf("notice: %+v", n)
	}
	if s.RegisteredEventIDs()[id] {
		t.Error("registered set should not reference a deleted event")
	}
	for _, e := range s.Events() {
		if e.ID == id {
			t.Error("event still present after delete")
		}
	}
}

func TestCreateCollabPost_AuthorIsViewer(t *testing.T) {
	s := newViewerStore()

	s.CreateCollabPost(models.CollabPost{Title: "Study Group for Algorithms", AuthorID: 999, Interested: 50})

	got := s.CollabPosts()[0]
	if got.Author != "Priya Sharma" || got.AuthorID != 42 {
		t.Errorf("author: %q (%d)", got.Author, got.AuthorID)
	}
	if got.Interested != 0 || len(got.InterestedBy) != 0 {
		t.Error("new post must start with an empty interested set")
	}
}

func TestRemoveUser_ClearsInterestMarks(t *testing.T) {
	s := newViewerStore()

	// Seed user 3 appears in several interested sets.
	n := s.RemoveUser(3)
	if n.Kind != models.NoticeSuccess {
		t.Fatalf("notice: %+v", n)
	}
	if n.Title != "User Removed" {
		t.Errorf("notice title = %q, want %q", n.Title, "User Removed")
	}
	for _, u := range s.Users() {
		if u.ID == 3 {
			t.Error("user still present after removal")
		}
	}
	for _, p := range s.CollabPosts() {
		if p.HasInterest(3) {
			t.Errorf("post %d still references removed user", p.ID)
		}
		if p.Interested != len(p.InterestedBy) {
			t.Errorf("post %d: count %d != set size %d", p.ID, p.Interested, len(p.InterestedBy))
		}
	}
}

func TestApproveUser(t *testing.T) {
	s := newViewerStore()

	n := s.ApproveUser(1)
	if n.Kind != models.NoticeSuccess {
		t.Fatalf("notice: %+v", n)
	}
	if n.Title != "Faculty Approved" {
		t.Errorf("notice title = %q, want %q", n.Title, "Faculty Approved")
	}
	for _, u := range s.Users() {
		if u.ID == 1 && u.Status != models.StatusVerified {
			t.Errorf("status: got %q", u.Status)
		}
	}
}

func TestDenyUser_Removes(t *testing.T) {
	s := newViewerStore()
	before := len(s.Users())

	n := s.DenyUser(2)
	if n.Title != "Registration Denied" {
		t.Errorf("notice title = %q, want %q", n.Title, "Registration Denied")
	}
	if got := len(s.Users()); got != before-1 {
		t.Errorf("len: got %d, want %d", got, before-1)
	}
}

func TestUserActions_UnknownID(t *testing.T) {
	s := newViewerStore()
	for _, n := range []models.Notice{
		s.ApproveUser(777),
		s.DenyUser(777),
		s.RemoveUser(777),
	} {
		if n.Kind != models.NoticeError {
			t.Errorf("unknown user id should error, got %+v", n)
		}
	}
}

func TestPublishAnnouncement_Prepends(t *testing.T) {
	s := newViewerStore()
	before := len(s.Announcements())

	s.PublishAnnouncement(models.Announcement{Title: "Exam Schedule Released", Target: models.TargetStudents})

	got := s.Announcements()
	if len(got) != before+1 || got[0].Title != "Exam Schedule Released" {
		t.Fatalf("new announcement should be first")
	}
}

func TestUpdateProfile(t *testing.T) {
	s := newViewerStore()

	s.UpdateProfile("Robotics club lead", []string{"AI", "Robotics"}, "3rd Year")

	v := s.Viewer()
	if v.Bio != "Robotics club lead" || v.Year != "3rd Year" || len(v.Interests) != 2 {
		t.Errorf("viewer: %+v", v)
	}
}

func TestAddAchievement_Prepends(t *testing.T) {
	s := newViewerStore()
	before := len(s.Achievements())

	s.AddAchievement(models.Achievement{Title: "Dean's List", Issuer: "Registrar", Kind: "award"})

	got := s.Achievements()
	if len(got) != before+1 || got[0].Title != "Dean's List" {
		t.Fatal("new achievement should be first")
	}
	if got[0].ID == 0 {
		t.Error("achievement should get an id")
	}
}

func TestNextID_StrictlyIncreasing(t *testing.T) {
	s := newViewerStore()
	var prev int64
	for i := 0; i < 10; i++ {
		s.CreateEvent(models.Event{Title: "E"})
		id := s.Events()[0].ID
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}
