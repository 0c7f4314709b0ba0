package student

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	uierrors "github.com/campussphere/campussphere/internal/app/features/errors"
	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/flash"
	"github.com/campussphere/campussphere/internal/app/system/prefs"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/campussphere/campussphere/internal/testutil"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

type fixture struct {
	h        *Handler
	sm       *auth.SessionManager
	registry *state.Registry
	stateID  string
	store    *state.Store
	cookies  []*http.Cookie
}

// newFixture signs in a student and returns their working set plus the
// session cookies that point action requests at it.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	sm, err := auth.NewSessionManager(testKey, "campussphere-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	pm, err := prefs.NewManager(testKey, false)
	if err != nil {
		t.Fatalf("prefs.NewManager: %v", err)
	}
	registry := state.NewRegistry()
	h := NewHandler(registry, sm, pm, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	viewer := models.User{ID: 1001, Name: "Test Student", Role: models.RoleStudent, Dept: "Computer Science"}
	stateID, store := registry.Create(viewer)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	if err := sm.SignIn(rec, req, &auth.SessionUser{ID: "1001", Name: "Test Student", Role: "student", Dept: "Computer Science"}, stateID); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	return &fixture{h: h, sm: sm, registry: registry, stateID: stateID, store: store, cookies: rec.Result().Cookies()}
}

func (f *fixture) postForm(t *testing.T, target, form string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewFormRequest(target, form, testutil.StudentUser())
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	switch {
	case strings.HasPrefix(target, "/student/events/register"):
		f.h.HandleRegisterEvent(rec, req)
	case strings.HasPrefix(target, "/student/collab/interest"):
		f.h.HandleExpressInterest(rec, req)
	case strings.HasPrefix(target, "/student/collab/new"):
		f.h.HandleNewCollabPost(rec, req)
	case strings.HasPrefix(target, "/student/collab/delete"):
		f.h.HandleDeleteCollabPost(rec, req)
	case strings.HasPrefix(target, "/student/achievements/add"):
		f.h.HandleAddAchievement(rec, req)
	case strings.HasPrefix(target, "/student/achievements/select"):
		f.h.HandleToggleAchievementSelect(rec, req)
	case strings.HasPrefix(target, "/student/profile"):
		f.h.HandleUpdateProfile(rec, req)
	case strings.HasPrefix(target, "/student/theme"):
		f.h.HandleToggleTheme(rec, req)
	default:
		t.Fatalf("no handler for %s", target)
	}
	return rec
}

func TestHandleRegisterEvent(t *testing.T) {
	f := newFixture(t)

	events := f.store.Events()
	if len(events) == 0 {
		t.Fatal("seed produced no events")
	}
	target := events[0]

	rec := f.postForm(t, "/student/events/register", "event_id="+itoa(target.ID))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	if !f.store.RegisteredEventIDs()[target.ID] {
		t.Error("event should be in the registered set")
	}
	after := f.store.Events()
	if after[0].Registrations != target.Registrations+1 {
		t.Errorf("registrations = %d, want %d", after[0].Registrations, target.Registrations+1)
	}

	// Registering again must not bump the count.
	f.postForm(t, "/student/events/register", "event_id="+itoa(target.ID))
	again := f.store.Events()
	if again[0].Registrations != target.Registrations+1 {
		t.Errorf("registrations after repeat = %d, want %d", again[0].Registrations, target.Registrations+1)
	}
}

func TestHandleExpressInterest_GFormRedirect(t *testing.T) {
	f := newFixture(t)

	var formPost models.CollabPost
	for _, p := range f.store.CollabPosts() {
		if p.GFormLink != "" {
			formPost = p
			break
		}
	}
	if formPost.ID == 0 {
		t.Fatal("seed has no post with a Google Form link")
	}

	rec := f.postForm(t, "/student/collab/interest", "post_id="+itoa(formPost.ID))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != formPost.GFormLink {
		t.Errorf("Location = %q, want the form link %q", loc, formPost.GFormLink)
	}

	// The working set must be untouched.
	for _, p := range f.store.CollabPosts() {
		if p.ID == formPost.ID && p.Interested != formPost.Interested {
			t.Error("interest count changed on a form-backed post")
		}
	}
}

func TestHandleNewCollabPost_StripsMarkup(t *testing.T) {
	f := newFixture(t)

	before := len(f.store.CollabPosts())
	rec := f.postForm(t, "/student/collab/new",
		"title=Robotics+%3Cscript%3Ealert(1)%3C%2Fscript%3E+team&description=Building+a+line+follower&skills=arduino,+c%2B%2B")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	posts := f.store.CollabPosts()
	if len(posts) != before+1 {
		t.Fatalf("post count = %d, want %d", len(posts), before+1)
	}
	created := posts[0]
	if strings.Contains(created.Title, "<script>") {
		t.Errorf("markup survived sanitization: %q", created.Title)
	}
	if created.AuthorID != 1001 {
		t.Errorf("author id = %d, want the viewer", created.AuthorID)
	}
	if len(created.Skills) != 2 {
		t.Errorf("skills = %v, want two entries", created.Skills)
	}
}

func TestHandleDeleteCollabPost_OwnershipGuard(t *testing.T) {
	f := newFixture(t)

	var other models.CollabPost
	for _, p := range f.store.CollabPosts() {
		if p.AuthorID != 1001 {
			other = p
			break
		}
	}
	if other.ID == 0 {
		t.Fatal("seed has no post by another author")
	}

	before := len(f.store.CollabPosts())
	f.postForm(t, "/student/collab/delete", "post_id="+itoa(other.ID))
	if got := len(f.store.CollabPosts()); got != before {
		t.Errorf("post count = %d after deleting someone else's post, want %d", got, before)
	}
}

func TestHandleAddAchievement(t *testing.T) {
	f := newFixture(t)

	before := len(f.store.Achievements())
	rec := f.postForm(t, "/student/achievements/add",
		"title=Hackathon+Winner&issuer=ACM&date=Apr+2026&kind=award")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	got := f.store.Achievements()
	if len(got) != before+1 {
		t.Fatalf("achievement count = %d, want %d", len(got), before+1)
	}
	if got[0].Title != "Hackathon Winner" {
		t.Errorf("new achievement should be prepended, got %q first", got[0].Title)
	}
}

func TestHandleExportAchievements(t *testing.T) {
	f := newFixture(t)

	for _, a := range f.store.Achievements() {
		f.postForm(t, "/student/achievements/select", "achievement_id="+itoa(a.ID))
	}

	req := testutil.NewAuthenticatedRequest("GET", "/student/achievements/export", testutil.StudentUser())
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.h.HandleExportAchievements(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	for _, a := range f.store.Achievements() {
		if !strings.Contains(rec.Body.String(), a.Title) {
			t.Errorf("export is missing %q", a.Title)
		}
	}
}

func TestHandleExportAchievements_EmptySelection(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewAuthenticatedRequest("GET", "/student/achievements/export", testutil.StudentUser())
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.h.HandleExportAchievements(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "" {
		t.Errorf("no download expected, got Content-Disposition %q", cd)
	}

	next := httptest.NewRequest("GET", "/student/achievements", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	n, ok := flash.Pop(httptest.NewRecorder(), next, f.sm)
	if !ok {
		t.Fatal("expected a flash notice for the empty selection")
	}
	if n.Title != "No Selection" || n.Kind != models.NoticeWarning {
		t.Errorf("notice = %+v, want No Selection warning", n)
	}
}

func TestHandleExportAchievements_Selection(t *testing.T) {
	f := newFixture(t)

	all := f.store.Achievements()
	if len(all) < 2 {
		t.Fatal("seed needs at least two achievements")
	}
	picked := all[1]

	rec := f.postForm(t, "/student/achievements/select", "achievement_id="+itoa(picked.ID))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if !f.store.SelectedAchievementIDs()[picked.ID] {
		t.Fatal("expected achievement to be marked for export")
	}

	req := testutil.NewAuthenticatedRequest("GET", "/student/achievements/export", testutil.StudentUser())
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	out := httptest.NewRecorder()
	f.h.HandleExportAchievements(out, req)

	body := out.Body.String()
	if !strings.Contains(body, picked.Title) {
		t.Errorf("export is missing selected %q", picked.Title)
	}
	for _, a := range all {
		if a.ID != picked.ID && strings.Contains(body, a.Title) {
			t.Errorf("export includes unselected %q", a.Title)
		}
	}

	// Toggling again clears the mark.
	f.postForm(t, "/student/achievements/select", "achievement_id="+itoa(picked.ID))
	if len(f.store.SelectedAchievementIDs()) != 0 {
		t.Error("expected selection to be cleared")
	}
}

func TestHandleUpdateProfile(t *testing.T) {
	f := newFixture(t)

	rec := f.postForm(t, "/student/profile",
		"bio=Robotics+fan&interests=AI,+Robotics&year=3rd+Year")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	v := f.store.Viewer()
	if v.Bio != "Robotics fan" {
		t.Errorf("bio = %q", v.Bio)
	}
	if len(v.Interests) != 2 || v.Interests[0] != "AI" {
		t.Errorf("interests = %v", v.Interests)
	}
	if v.Year != "3rd Year" {
		t.Errorf("year = %q", v.Year)
	}

	// The preference cookie snapshot is refreshed too.
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "campussphere_prefs" {
			found = true
		}
	}
	if !found {
		t.Error("profile update should rewrite the preference cookie")
	}
}

func TestHandleToggleTheme(t *testing.T) {
	f := newFixture(t)

	rec := f.postForm(t, "/student/theme", "theme=dark&from=/student/profile")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/student/profile" {
		t.Errorf("Location = %q", loc)
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "campussphere_prefs" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("theme change should write the preference cookie")
	}
}

func TestServePage_RenderDoesNotPanicOutsideTemplates(t *testing.T) {
	f := newFixture(t)

	for _, slug := range []string{"", "overview", "discover", "my-events", "collab", "achievements", "announcements", "profile", "bogus"} {
		target := "/student"
		if slug != "" {
			target += "/" + slug
		}
		req := testutil.NewAuthenticatedRequest("GET", target, testutil.StudentUser())
		for _, c := range f.cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()

		// Template rendering may panic when the engine is not booted in
		// tests; the handler logic itself must not.
		func() {
			defer func() { recover() }()
			Routes(f.h, f.sm).ServeHTTP(rec, req)
		}()
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
