package authgoogle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, clientID, clientSecret string) *Handler {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-0123456789abcdef", "cs_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return &Handler{
		Log:          zap.NewNop(),
		SessionMgr:   sm,
		Registry:     state.NewRegistry(),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  "http://localhost:8080/auth/google/callback",
	}
}

func TestServeLogin_NotConfigured(t *testing.T) {
	h := newTestHandler(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "google_not_configured") {
		t.Errorf("redirect = %q, want google_not_configured error", loc)
	}
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	h := newTestHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("redirect = %q, want Google auth URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("redirect = %q, want state parameter", loc)
	}
}

func TestServeCallback_StateMismatch(t *testing.T) {
	h := newTestHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=bogus&code=abc", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "state_mismatch") {
		t.Errorf("redirect = %q, want state_mismatch error", loc)
	}
}
