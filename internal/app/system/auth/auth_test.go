package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager("0123456789abcdef0123456789abcdef", "campussphere-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestCurrentUser_NotSet(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := CurrentUser(req); ok {
		t.Fatal("expected no user in fresh request context")
	}
}

func TestWithTestUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = WithTestUser(req, &SessionUser{ID: "1", Name: "Ada", Role: "student"})

	u, ok := CurrentUser(req)
	if !ok {
		t.Fatal("expected user in context")
	}
	if u.Name != "Ada" || u.Role != "student" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestRequireSignedIn_RedirectsBrowser(t *testing.T) {
	sm := newTestManager(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	req := httptest.NewRequest("GET", "/student", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	sm.RequireSignedIn(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?return=%2Fstudent" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestRequireSignedIn_JSON401(t *testing.T) {
	sm := newTestManager(t)

	req := httptest.NewRequest("POST", "/api/whatever", nil)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	sm.RequireSignedIn(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	sm := newTestManager(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Accept", "text/html")
	req = WithTestUser(req, &SessionUser{ID: "1", Role: "student"})
	rec := httptest.NewRecorder()

	sm.RequireRole("admin")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/forbidden" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	sm := newTestManager(t)

	called := false
	req := httptest.NewRequest("GET", "/admin", nil)
	req = WithTestUser(req, &SessionUser{ID: "1", Role: "Admin"})
	rec := httptest.NewRecorder()

	sm.RequireRole("admin")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected next handler to run for matching role")
	}
}

func TestSignInThenLoadSessionUser(t *testing.T) {
	sm := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	u := &SessionUser{ID: "42", Name: "Priya Sharma", Email: "priya@campus.edu", Role: "student", Dept: "CS"}
	if err := sm.SignIn(rec, req, u, "state-1"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	cookie := rec.Result().Cookies()
	if len(cookie) == 0 {
		t.Fatal("expected a session cookie")
	}

	req2 := httptest.NewRequest("GET", "/student", nil)
	for _, c := range cookie {
		req2.AddCookie(c)
	}

	var got *SessionUser
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("expected user loaded from session")
	}
	if got.ID != "42" || got.Dept != "CS" {
		t.Errorf("loaded user: %+v", got)
	}
	if sm.StateID(req2) != "state-1" {
		t.Errorf("StateID: got %q, want state-1", sm.StateID(req2))
	}
}

func TestSignOutClearsSession(t *testing.T) {
	sm := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	if err := sm.SignIn(rec, req, &SessionUser{ID: "7", Role: "faculty"}, "state-7"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	req2 := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()

	stateID, err := sm.SignOut(rec2, req2)
	if err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if stateID != "state-7" {
		t.Errorf("stateID: got %q, want state-7", stateID)
	}
}
